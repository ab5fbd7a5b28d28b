package character

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character Service

// Service defines the character orchestrator interface
type Service interface {
	// Character lifecycle
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Derived values for display
	Sheet(ctx context.Context, input *SheetInput) (*SheetOutput, error)

	// Edits. Each one loads the character, applies a single change and saves it.
	AdjustHP(ctx context.Context, input *AdjustHPInput) (*EditOutput, error)
	SetHP(ctx context.Context, input *SetHPInput) (*EditOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*EditOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*EditOutput, error)
	SetSpellSlots(ctx context.Context, input *SetSpellSlotsInput) (*EditOutput, error)
	AdjustSpellSlot(ctx context.Context, input *AdjustSpellSlotInput) (*EditOutput, error)
	AddItem(ctx context.Context, input *AddItemInput) (*EditOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	RemoveLastItem(ctx context.Context, input *RemoveLastItemInput) (*RemoveItemOutput, error)
	SetNotes(ctx context.Context, input *SetNotesInput) (*EditOutput, error)
}

// CreateInput carries the wizard's answers. Blank strings and zero numbers
// fall back to the dnd5e Default* values.
type CreateInput struct {
	Name  string
	Class string
	Race  string
	Level int
	// Abilities may be nil for all-default scores. A partial map is rejected.
	Abilities          map[dnd5e.Ability]int
	MaxHP              int
	CurrentHP          *int
	ArmorClass         int
	Speed              int
	SkillProficiencies []string
	SpellSlots         []int
	Inventory          []dnd5e.InventoryItem
	Notes              string
}

// CreateOutput is the stored character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput identifies a character
type GetInput struct {
	ID string
}

// GetOutput is the stored character
type GetOutput struct {
	Character *dnd5e.Character
}

// ListInput has no filters; the store is single-user
type ListInput struct{}

// ListOutput holds characters ordered by name
type ListOutput struct {
	Characters []*dnd5e.Character
}

// DeleteInput identifies a character
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// SheetInput identifies a character
type SheetInput struct {
	ID string
}

// SheetOutput is a character with its derived numbers
type SheetOutput struct {
	Character        *dnd5e.Character
	Modifiers        map[dnd5e.Ability]int
	ProficiencyBonus int
	Skills           []engine.SkillLine
}

// AdjustHPInput adds Delta to current HP
type AdjustHPInput struct {
	ID    string
	Delta int
}

// SetHPInput replaces current HP
type SetHPInput struct {
	ID string
	HP int
}

// SetLevelInput replaces the level
type SetLevelInput struct {
	ID    string
	Level int
}

// LevelUpInput raises the level by one
type LevelUpInput struct {
	ID string
}

// SetSpellSlotsInput replaces all slot counts
type SetSpellSlotsInput struct {
	ID    string
	Slots []int
}

// AdjustSpellSlotInput adds Delta to one spell level (1-9)
type AdjustSpellSlotInput struct {
	ID    string
	Level int
	Delta int
}

// AddItemInput appends an inventory item
type AddItemInput struct {
	ID   string
	Item dnd5e.InventoryItem
}

// RemoveItemInput removes the inventory item at Index
type RemoveItemInput struct {
	ID    string
	Index int
}

// RemoveLastItemInput removes the last inventory item
type RemoveLastItemInput struct {
	ID string
}

// SetNotesInput replaces the notes
type SetNotesInput struct {
	ID    string
	Notes string
}

// EditOutput is the character as saved after an edit
type EditOutput struct {
	Character *dnd5e.Character
}

// RemoveItemOutput is the saved character and the item taken out
type RemoveItemOutput struct {
	Character *dnd5e.Character
	Removed   dnd5e.InventoryItem
}
