// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	IDGenerator   idgen.Generator
	// LevelRange defaults to 1-20 when zero
	LevelRange dnd5e.LevelRange
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.LevelRange != (dnd5e.LevelRange{}) {
		if err := c.LevelRange.Validate(); err != nil {
			vb.Field("LevelRange", errors.GetMessage(err))
		}
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	idGen         idgen.Generator
	levels        dnd5e.LevelRange
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	levels := cfg.LevelRange
	if levels == (dnd5e.LevelRange{}) {
		levels = dnd5e.DefaultLevelRange()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		idGen:         cfg.IDGenerator,
		levels:        levels,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Create validates the wizard answers and stores the new character
func (o *Orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := dnd5e.NewCharacter(o.newCharacterInput(input))
	if err != nil {
		return nil, err
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", created.Character.ID,
		"name", created.Character.Name,
		"level", created.Character.Level,
	)

	return &CreateOutput{Character: created.Character}, nil
}

func (o *Orchestrator) newCharacterInput(input *CreateInput) *dnd5e.NewCharacterInput {
	abilities := input.Abilities
	if abilities == nil {
		abilities = make(map[dnd5e.Ability]int, len(dnd5e.Abilities()))
		for _, ability := range dnd5e.Abilities() {
			abilities[ability] = dnd5e.DefaultScore
		}
	}

	slots := input.SpellSlots
	if slots == nil {
		slots = make([]int, dnd5e.SpellSlotLevels)
	}

	return &dnd5e.NewCharacterInput{
		ID:                 o.idGen.Generate(),
		Name:               stringOr(input.Name, dnd5e.DefaultName),
		Class:              stringOr(input.Class, dnd5e.DefaultClass),
		Race:               stringOr(input.Race, dnd5e.DefaultRace),
		Level:              intOr(input.Level, dnd5e.DefaultLevel),
		Abilities:          abilities,
		MaxHP:              intOr(input.MaxHP, dnd5e.DefaultHP),
		CurrentHP:          input.CurrentHP,
		ArmorClass:         intOr(input.ArmorClass, dnd5e.DefaultArmorClass),
		Speed:              intOr(input.Speed, dnd5e.DefaultSpeed),
		SkillProficiencies: input.SkillProficiencies,
		SpellSlots:         slots,
		Inventory:          input.Inventory,
		Notes:              input.Notes,
		LevelRange:         o.levels,
	}
}

// Get retrieves a character by ID
func (o *Orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	char, err := o.load(ctx, input.getID())
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

// List returns every character ordered by name
func (o *Orchestrator) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &ListOutput{Characters: out.Characters}, nil
}

// Delete removes a character
func (o *Orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.ID)
	return &DeleteOutput{}, nil
}

// Sheet computes the derived numbers shown on the sheet
func (o *Orchestrator) Sheet(ctx context.Context, input *SheetInput) (*SheetOutput, error) {
	var id string
	if input != nil {
		id = input.ID
	}
	char, err := o.load(ctx, id)
	if err != nil {
		return nil, err
	}

	modifiers := make(map[dnd5e.Ability]int, len(dnd5e.Abilities()))
	for _, ability := range dnd5e.Abilities() {
		modifiers[ability] = engine.AbilityModifier(char, ability)
	}

	return &SheetOutput{
		Character:        char,
		Modifiers:        modifiers,
		ProficiencyBonus: engine.ProficiencyBonus(char.Level),
		Skills:           engine.SkillTable(char),
	}, nil
}

// AdjustHP adds a delta to current HP without clamping
func (o *Orchestrator) AdjustHP(ctx context.Context, input *AdjustHPInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "adjust_hp", func(c *dnd5e.Character) error {
		c.AdjustHP(input.Delta)
		return nil
	})
}

// SetHP replaces current HP
func (o *Orchestrator) SetHP(ctx context.Context, input *SetHPInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "set_hp", func(c *dnd5e.Character) error {
		c.SetHP(input.HP)
		return nil
	})
}

// SetLevel replaces the level, checked against the configured range
func (o *Orchestrator) SetLevel(ctx context.Context, input *SetLevelInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "set_level", func(c *dnd5e.Character) error {
		return c.SetLevel(input.Level, o.levels)
	})
}

// LevelUp raises the level by one
func (o *Orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "level_up", func(c *dnd5e.Character) error {
		return c.LevelUp(o.levels)
	})
}

// SetSpellSlots replaces every slot count
func (o *Orchestrator) SetSpellSlots(ctx context.Context, input *SetSpellSlotsInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "set_spell_slots", func(c *dnd5e.Character) error {
		return c.SetSpellSlots(input.Slots)
	})
}

// AdjustSpellSlot changes one spell level's slots, stopping at zero
func (o *Orchestrator) AdjustSpellSlot(ctx context.Context, input *AdjustSpellSlotInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "adjust_spell_slot", func(c *dnd5e.Character) error {
		return c.AdjustSpellSlot(input.Level, input.Delta)
	})
}

// AddItem appends an inventory item
func (o *Orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "add_item", func(c *dnd5e.Character) error {
		return c.AddItem(input.Item)
	})
}

// RemoveItem removes the item at an index
func (o *Orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var removed dnd5e.InventoryItem
	out, err := o.edit(ctx, input.ID, "remove_item", func(c *dnd5e.Character) error {
		var err error
		removed, err = c.RemoveItem(input.Index)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &RemoveItemOutput{Character: out.Character, Removed: removed}, nil
}

// RemoveLastItem removes the most recently added item
func (o *Orchestrator) RemoveLastItem(ctx context.Context, input *RemoveLastItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var removed dnd5e.InventoryItem
	out, err := o.edit(ctx, input.ID, "remove_last_item", func(c *dnd5e.Character) error {
		var err error
		removed, err = c.RemoveLastItem()
		return err
	})
	if err != nil {
		return nil, err
	}

	return &RemoveItemOutput{Character: out.Character, Removed: removed}, nil
}

// SetNotes replaces the free-text notes
func (o *Orchestrator) SetNotes(ctx context.Context, input *SetNotesInput) (*EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.edit(ctx, input.ID, "set_notes", func(c *dnd5e.Character) error {
		c.SetNotes(input.Notes)
		return nil
	})
}

// edit loads a character, applies change and saves it. Nothing is written
// when change fails.
func (o *Orchestrator) edit(ctx context.Context, id, op string, change func(*dnd5e.Character) error) (*EditOutput, error) {
	char, err := o.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := change(char); err != nil {
		return nil, err
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", id)
	}

	slog.DebugContext(ctx, "character edited", "character_id", id, "op", op)

	return &EditOutput{Character: updated.Character}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*dnd5e.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return out.Character, nil
}

func (in *GetInput) getID() string {
	if in == nil {
		return ""
	}
	return in.ID
}

func stringOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func intOr(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
