// Package dicesession stores recent roll history grouped by entity and context
package dicesession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session Repository

// DiceSession is a collection of rolls grouped by entity and context
type DiceSession struct {
	// Entity that owns these rolls (e.g., "char_4f1c2a9e")
	EntityID string `json:"entity_id"`

	// core.Entity type of the owner ("character", "draft")
	EntityType string `json:"entity_type,omitempty"`

	// Context for grouping related rolls (e.g., "rolls")
	Context string `json:"context"`

	// Oldest first
	Rolls []DiceRoll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DiceRoll is a single recorded roll
type DiceRoll struct {
	RollID string `json:"roll_id"`

	// Token as the user typed it (e.g., "stealth adv")
	Token string `json:"token"`

	// Kind is "ability", "skill" or "dice"
	Kind string `json:"kind"`

	// Human-readable label (e.g., "Stealth check")
	Description string `json:"description"`

	// Notation that was actually rolled (e.g., "1d20+5")
	Notation string `json:"notation"`

	// Kept dice in roll order
	Dice []int `json:"dice"`

	// Dice discarded by advantage or disadvantage
	Dropped []int `json:"dropped,omitempty"`

	DiceTotal int `json:"dice_total"`
	Modifier  int `json:"modifier"`
	Total     int `json:"total"`

	RolledAt time.Time `json:"rolled_at"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID   string
	EntityType string
	Context    string
	Rolls      []DiceRoll
	TTL        time.Duration // How long the session should live
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	// Returns errors.CodeInvalidArgument if entity ID or context is empty
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	// Returns errors.CodeNotFound if missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session. Deleting a missing session is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session (used for adding rolls)
	// Returns errors.CodeInvalidArgument if the session has already expired
	Update(ctx context.Context, session *DiceSession) error
}

const (
	// Key pattern: dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"

	// DefaultTTL is used when CreateInput.TTL is zero
	DefaultTTL = 24 * time.Hour

	// Error messages
	errSessionNil     = "session cannot be nil"
	errEntityIDEmpty  = "entity ID cannot be empty"
	errContextEmpty   = "context cannot be empty"
	errSessionExpired = "session has already expired"
	errNotFound       = "dice session not found"
)

func validateKey(entityID, context string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}
