// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository defines the interface for character persistence.
// Implementations store and return full snapshots; callers never share a
// *dnd5e.Character with the store.
type Repository interface {
	// Create stores a new character and stamps CreatedAt and UpdatedAt
	// Returns errors.InvalidArgument for a nil character or empty ID
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character and stamps UpdatedAt
	// Returns errors.InvalidArgument for a nil character or empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every character ordered by name (case-insensitive), then ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *dnd5e.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*dnd5e.Character
}

const (
	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)
