package dice

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
)

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice Service

// Service defines the interface for dice operations
type Service interface {
	// Roll resolves an ability, skill or dice token for a character and
	// records it in the character's history
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Generic dice rolling, recorded only when an entity is given
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// Specialized ability score rolling for character creation
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// Roll history
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}

// RollInput defines the request for a character roll
type RollInput struct {
	CharacterID string
	Token       string // "str", "stealth adv", "2d6+3"
}

// RollOutput defines the response for a character roll
type RollOutput struct {
	Resolution *engine.Resolution
	Roll       *dicesession.DiceRoll
}

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	Notation    string
	Description string

	// Optional; the roll is recorded under EntityID and Context when set.
	// EntityType defaults to "entity".
	EntityID   string
	EntityType string
	Context    string
	TTL        time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Result  *dice.Result
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession // nil when nothing was recorded
}

// RollAbilityScoresInput defines the request for rolling ability scores for character creation
type RollAbilityScoresInput struct {
	EntityID string
	Method   string // MethodStandard (default) or MethodClassic
}

// RollAbilityScoresOutput defines the response for rolling ability scores
type RollAbilityScoresOutput struct {
	Scores  []int // six totals in roll order
	Rolls   []*dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// HistoryInput identifies a character
type HistoryInput struct {
	CharacterID string
}

// HistoryOutput holds recorded rolls, oldest first
type HistoryOutput struct {
	EntityType string // empty when there is no history
	Rolls      []dicesession.DiceRoll
	ExpiresAt  time.Time // zero when there is no history
}

// ClearHistoryInput identifies a character
type ClearHistoryInput struct {
	CharacterID string
}

// ClearHistoryOutput reports how many rolls were removed
type ClearHistoryOutput struct {
	RollsDeleted int
}
