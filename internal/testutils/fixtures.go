package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

const (
	// TestCharacterID is the id of the default character fixture
	TestCharacterID = "char_test_001"
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"
)

// TestCharacterInput returns a valid level 5 character input.
// Modifiers: STR -1, DEX +3, CON +2, INT +1, WIS +0, CHA +2.
// Proficient in perception and stealth.
func TestCharacterInput() *dnd5e.NewCharacterInput {
	return &dnd5e.NewCharacterInput{
		ID:    TestCharacterID,
		Name:  TestCharacterName,
		Class: "Rogue",
		Race:  "Dwarf",
		Level: 5,
		Abilities: map[dnd5e.Ability]int{
			dnd5e.AbilityStrength:     8,
			dnd5e.AbilityDexterity:    16,
			dnd5e.AbilityConstitution: 14,
			dnd5e.AbilityIntelligence: 12,
			dnd5e.AbilityWisdom:       10,
			dnd5e.AbilityCharisma:     14,
		},
		MaxHP:              38,
		ArmorClass:         15,
		Speed:              25,
		SkillProficiencies: []string{"stealth", "perception"},
		SpellSlots:         []int{2},
		Inventory: []dnd5e.InventoryItem{
			{Name: "Shortsword"},
			{Name: "Torch", Quantity: 3},
		},
		Notes: "Owes the guild 40gp.",
	}
}

// NewTestCharacter builds the default character fixture
func NewTestCharacter(t testing.TB) *dnd5e.Character {
	t.Helper()
	char, err := dnd5e.NewCharacter(TestCharacterInput())
	require.NoError(t, err, "failed to build test character")
	return char
}

// NewNamedCharacter builds the fixture with a different id and name
func NewNamedCharacter(t testing.TB, id, name string) *dnd5e.Character {
	t.Helper()
	input := TestCharacterInput()
	input.ID = id
	input.Name = name
	char, err := dnd5e.NewCharacter(input)
	require.NoError(t, err, "failed to build test character")
	return char
}
