package dicesession

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// InMemoryRepository implements Repository in process memory. It is the
// default when no Redis URL is configured, so history lasts one run.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*DiceSession
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*DiceSession),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new dice session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session := newSession(input, r.clock.Now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[buildKey(input.EntityID, input.Context)] = copySession(session)

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a dice session
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.store[key]
	if !ok {
		return nil, errors.NotFound(errNotFound).WithMeta("entity_id", input.EntityID)
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.store, key)
		return nil, errors.NotFound("dice session has expired").WithMeta("entity_id", input.EntityID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Session: copySession(session)}, nil
}

// Delete removes a dice session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	r.mu.Lock()
	defer r.mu.Unlock()

	var rollsDeleted int
	if session, ok := r.store[key]; ok && !r.clock.Now().After(session.ExpiresAt) {
		rollsDeleted = len(session.Rolls)
	}
	delete(r.store, key)

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// Update replaces an existing dice session
func (r *InMemoryRepository) Update(_ context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}
	if !r.clock.Now().Before(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[buildKey(session.EntityID, session.Context)] = copySession(session)

	return nil
}

func newSession(input CreateInput, now time.Time) *DiceSession {
	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DiceSession{
		EntityID:   input.EntityID,
		EntityType: input.EntityType,
		Context:    input.Context,
		Rolls:      input.Rolls,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
}

func copySession(s *DiceSession) *DiceSession {
	out := *s
	out.Rolls = make([]DiceRoll, len(s.Rolls))
	for i, roll := range s.Rolls {
		roll.Dice = append([]int(nil), roll.Dice...)
		roll.Dropped = append([]int(nil), roll.Dropped...)
		out.Rolls[i] = roll
	}
	return &out
}
