package character

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a map
type InMemoryRepository struct {
	mu         sync.RWMutex
	clock      clock.Clock
	characters map[string]*dnd5e.Character
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock:      clk,
		characters: make(map[string]*dnd5e.Character),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new character
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[input.Character.ID]; exists {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	char := input.Character.Clone()
	now := r.clock.Now()
	char.CreatedAt = now
	char.UpdatedAt = now
	r.characters[char.ID] = char

	return &CreateOutput{Character: char.Clone()}, nil
}

// Get retrieves a character
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, ok := r.characters[input.ID]
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}

	return &GetOutput{Character: char.Clone()}, nil
}

// Update replaces a character, keeping its CreatedAt
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.characters[input.Character.ID]
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.Character.ID).
			WithMeta("character_id", input.Character.ID)
	}

	char := input.Character.Clone()
	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = r.clock.Now()
	r.characters[char.ID] = char

	return &UpdateOutput{Character: char.Clone()}, nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[input.ID]; !ok {
		return nil, errors.NotFoundf("character %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}
	delete(r.characters, input.ID)

	return &DeleteOutput{}, nil
}

// List returns all characters ordered by name, then ID
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := make([]*dnd5e.Character, 0, len(r.characters))
	for _, char := range r.characters {
		characters = append(characters, char.Clone())
	}

	sort.Slice(characters, func(i, j int) bool {
		a, b := strings.ToLower(characters[i].Name), strings.ToLower(characters[j].Name)
		if a != b {
			return a < b
		}
		return characters[i].ID < characters[j].ID
	})

	return &ListOutput{Characters: characters}, nil
}
