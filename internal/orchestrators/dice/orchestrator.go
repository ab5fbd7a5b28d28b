// Package dice implements the dice orchestrator: character rolls, raw dice
// rolls and the roll history kept in dice sessions
package dice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
)

const (
	// ContextRolls holds a character's resolved rolls
	ContextRolls = "rolls"

	// ContextAbilityScores holds rolls made while creating a character
	ContextAbilityScores = "ability_scores"

	// DefaultMaxHistory is how many rolls a session keeps
	DefaultMaxHistory = 100

	// Dice rolling methods
	MethodStandard = "standard" // 4d6, drop the lowest
	MethodClassic  = "classic"  // 3d6

	abilityScoreCount = 6
)

// Config holds the dependencies for the dice orchestrator
type Config struct {
	CharacterRepo   characterrepo.Repository
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	Source          dice.Source

	// Optional
	Clock      clock.Clock
	HistoryTTL time.Duration // defaults to dicesession.DefaultTTL
	MaxHistory int           // defaults to DefaultMaxHistory
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.HistoryTTL < 0 {
		vb.Field("HistoryTTL", "cannot be negative")
	}
	if c.MaxHistory < 0 {
		vb.Field("MaxHistory", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo   characterrepo.Repository
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	clock           clock.Clock
	historyTTL      time.Duration
	maxHistory      int

	// sources are not safe for concurrent use and the UI rolls from
	// background commands
	mu     sync.Mutex
	source dice.Source
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		characterRepo:   cfg.CharacterRepo,
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		source:          cfg.Source,
		clock:           cfg.Clock,
		historyTTL:      cfg.HistoryTTL,
		maxHistory:      cfg.MaxHistory,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.historyTTL == 0 {
		o.historyTTL = dicesession.DefaultTTL
	}
	if o.maxHistory == 0 {
		o.maxHistory = DefaultMaxHistory
	}

	return o, nil
}

// Roll resolves a token against a stored character and records the result
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	entity := rpgtoolkit.NewCharacterEntity(got.Character)

	o.mu.Lock()
	resolution, err := engine.ResolveRoll(entity.Character, input.Token, o.source)
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	roll := o.newRoll(input.Token, string(resolution.Kind), resolution.Label, resolution.Result)
	if _, err := o.record(ctx, entity, ContextRolls, o.historyTTL, roll); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "roll resolved",
		"character_id", entity.GetID(),
		"token", input.Token,
		"kind", resolution.Kind,
		"total", resolution.Result.Total,
		"roll_id", roll.RollID,
	)

	return &RollOutput{Resolution: resolution, Roll: roll}, nil
}

// RollDice rolls dice using the specified notation and stores the result in
// a session when an entity is given
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}
	if input.EntityID != "" && input.Context == "" {
		return nil, errors.InvalidArgument("context is required when recording a roll")
	}

	req, err := dice.Parse(input.Notation)
	if err != nil {
		return nil, err
	}

	result, err := o.evaluate(*req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	description := input.Description
	if description == "" {
		description = req.String()
	}
	roll := o.newRoll(input.Notation, string(engine.RollKindDice), description, result)

	out := &RollDiceOutput{Result: result, Roll: roll}
	if input.EntityID == "" {
		return out, nil
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = o.historyTTL
	}
	out.Session, err = o.record(ctx, rpgtoolkit.NewEntity(input.EntityType, input.EntityID), input.Context, ttl, roll)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "dice rolled",
		"entity_id", input.EntityID,
		"entity_type", out.Session.EntityType,
		"context", input.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return out, nil
}

// RollAbilityScores handles specialized ability score rolling for character creation
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	method := input.Method
	if method == "" {
		method = MethodStandard
	}

	var req dice.Request
	dropLowest := false
	switch method {
	case MethodStandard:
		req = dice.Request{Count: 4, Sides: 6}
		dropLowest = true
	case MethodClassic:
		req = dice.Request{Count: 3, Sides: 6}
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}

	rolls := make([]*dicesession.DiceRoll, 0, abilityScoreCount)
	values := make([]dicesession.DiceRoll, 0, abilityScoreCount)
	scores := make([]int, 0, abilityScoreCount)

	for i := 0; i < abilityScoreCount; i++ {
		result, err := o.evaluate(req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
		}
		if dropLowest {
			result = dropLowestDie(result)
		}

		roll := o.newRoll(req.String(), string(engine.RollKindDice),
			fmt.Sprintf("Ability Score %d (%s)", i+1, method), result)
		rolls = append(rolls, roll)
		values = append(values, *roll)
		scores = append(scores, result.Total)
	}

	// Re-rolling replaces the previous set
	if _, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  ContextAbilityScores,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to clear previous ability score session")
	}

	draft := rpgtoolkit.NewEntity(rpgtoolkit.EntityTypeDraft, input.EntityID)
	created, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID:   draft.GetID(),
		EntityType: draft.GetType(),
		Context:    ContextAbilityScores,
		Rolls:      values,
		TTL:        o.historyTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ability score session")
	}

	slog.InfoContext(ctx, "ability scores rolled",
		"entity_id", input.EntityID,
		"method", method,
		"scores", scores,
	)

	return &RollAbilityScoresOutput{
		Scores:  scores,
		Rolls:   rolls,
		Session: created.Session,
	}, nil
}

// History returns a character's recorded rolls. A character that has never
// rolled has an empty history.
func (o *orchestrator) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.CharacterID,
		Context:  ContextRolls,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return &HistoryOutput{Rolls: []dicesession.DiceRoll{}}, nil
		}
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &HistoryOutput{
		EntityType: got.Session.EntityType,
		Rolls:      got.Session.Rolls,
		ExpiresAt:  got.Session.ExpiresAt,
	}, nil
}

// ClearHistory removes a character's recorded rolls
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	deleted, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.CharacterID,
		Context:  ContextRolls,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.InfoContext(ctx, "roll history cleared",
		"character_id", input.CharacterID,
		"rolls_deleted", deleted.RollsDeleted,
	)

	return &ClearHistoryOutput{RollsDeleted: deleted.RollsDeleted}, nil
}

func (o *orchestrator) evaluate(req dice.Request) (*dice.Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return dice.Evaluate(req, o.source)
}

func (o *orchestrator) newRoll(token, kind, description string, result *dice.Result) *dicesession.DiceRoll {
	notation := result.Request.String()
	if result.Request.Mode != dice.ModeNormal {
		notation += " " + result.Request.Mode.String()
	}

	return &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Token:       token,
		Kind:        kind,
		Description: description,
		Notation:    notation,
		Dice:        append([]int(nil), result.Rolls...),
		Dropped:     append([]int(nil), result.Dropped...),
		DiceTotal:   result.DiceTotal(),
		Modifier:    result.Request.Modifier,
		Total:       result.Total,
		RolledAt:    o.clock.Now(),
	}
}

// record appends roll to the entity's session, creating it on first use and
// keeping only the newest maxHistory rolls. Sessions are keyed by the
// entity's ID and tagged with its type.
func (o *orchestrator) record(
	ctx context.Context, entity core.Entity, sessionContext string, ttl time.Duration, roll *dicesession.DiceRoll,
) (*dicesession.DiceSession, error) {
	got, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: entity.GetID(),
		Context:  sessionContext,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		created, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
			EntityID:   entity.GetID(),
			EntityType: entity.GetType(),
			Context:    sessionContext,
			Rolls:      []dicesession.DiceRoll{*roll},
			TTL:        ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice session")
		}
		return created.Session, nil
	}

	session := got.Session
	session.Rolls = append(session.Rolls, *roll)
	if len(session.Rolls) > o.maxHistory {
		session.Rolls = session.Rolls[len(session.Rolls)-o.maxHistory:]
	}

	if err := o.diceSessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update dice session")
	}
	return session, nil
}

// dropLowestDie moves the lowest kept die to Dropped and recomputes the total
func dropLowestDie(result *dice.Result) *dice.Result {
	if len(result.Rolls) < 2 {
		return result
	}

	lowest := 0
	for i, v := range result.Rolls {
		if v < result.Rolls[lowest] {
			lowest = i
		}
	}

	out := *result
	out.Dropped = append(append([]int(nil), result.Dropped...), result.Rolls[lowest])
	out.Rolls = append(append([]int(nil), result.Rolls[:lowest]...), result.Rolls[lowest+1:]...)
	out.Total = out.DiceTotal() + out.Request.Modifier
	return &out
}
