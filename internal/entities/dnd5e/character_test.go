package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	input *dnd5e.NewCharacterInput
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.input = &dnd5e.NewCharacterInput{
		ID:    "char_1",
		Name:  "Mira Thornfield",
		Class: "Rogue",
		Race:  "Halfling",
		Level: 3,
		Abilities: map[dnd5e.Ability]int{
			dnd5e.AbilityStrength:     8,
			dnd5e.AbilityDexterity:    17,
			dnd5e.AbilityConstitution: 12,
			dnd5e.AbilityIntelligence: 13,
			dnd5e.AbilityWisdom:       10,
			dnd5e.AbilityCharisma:     14,
		},
		MaxHP:              21,
		ArmorClass:         14,
		Speed:              25,
		SkillProficiencies: []string{"Stealth", "sleight of hand", "perception", "stealth"},
		Inventory:          []dnd5e.InventoryItem{{Name: "Thieves' tools"}},
	}
}

func (s *CharacterTestSuite) TestNewCharacter() {
	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)

	s.Assert().Equal("char_1", char.ID)
	s.Assert().Equal(17, char.AbilityScores.Dexterity)
	s.Assert().Equal(21, char.CurrentHP)
	s.Assert().Equal([]dnd5e.Skill{
		dnd5e.SkillPerception,
		dnd5e.SkillSleightOfHand,
		dnd5e.SkillStealth,
	}, char.SkillProficiencies)
	s.Assert().Equal(make([]int, dnd5e.SpellSlotLevels), char.SpellSlots)
	s.Assert().Equal([]dnd5e.InventoryItem{{Name: "Thieves' tools", Quantity: 1}}, char.Inventory)
	s.Assert().True(char.HasProficiency(dnd5e.SkillStealth))
	s.Assert().False(char.HasProficiency(dnd5e.SkillArcana))
}

func (s *CharacterTestSuite) TestNewCharacterExplicitCurrentHP() {
	current := -3
	s.input.CurrentHP = &current

	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)
	s.Assert().Equal(-3, char.CurrentHP)
}

func (s *CharacterTestSuite) TestLevelBounds() {
	testCases := []struct {
		name    string
		level   int
		levels  dnd5e.LevelRange
		wantErr bool
	}{
		{"level 0", 0, dnd5e.LevelRange{}, true},
		{"level 1", 1, dnd5e.LevelRange{}, false},
		{"level 20", 20, dnd5e.LevelRange{}, false},
		{"level 21", 21, dnd5e.LevelRange{}, true},
		{"level 25 with epic range", 25, dnd5e.LevelRange{Min: 1, Max: 30}, false},
		{"level 2 with narrowed range", 2, dnd5e.LevelRange{Min: 3, Max: 10}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.input.Level = tc.level
			s.input.LevelRange = tc.levels

			char, err := dnd5e.NewCharacter(s.input)
			if tc.wantErr {
				s.Require().Error(err)
				s.Assert().True(errors.IsInvalidCharacter(err))
				s.Assert().Contains(errors.GetFieldErrors(err), "level")
				s.Assert().Nil(char)
			} else {
				s.Require().NoError(err)
				s.Assert().Equal(tc.level, char.Level)
			}
		})
	}
}

func (s *CharacterTestSuite) TestRejectsEmptyName() {
	s.input.Name = "   "

	_, err := dnd5e.NewCharacter(s.input)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidCharacter(err))
	s.Assert().Equal([]string{"is required"}, errors.GetFieldErrors(err)["name"])
}

func (s *CharacterTestSuite) TestRejectsMissingAbility() {
	delete(s.input.Abilities, dnd5e.AbilityWisdom)

	_, err := dnd5e.NewCharacter(s.input)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidCharacter(err))
	s.Assert().Equal([]string{"Wisdom is required"}, errors.GetFieldErrors(err)["abilities"])
}

func (s *CharacterTestSuite) TestRejectsBadFields() {
	s.input.Abilities[dnd5e.AbilityStrength] = 31
	s.input.MaxHP = 0
	s.input.SkillProficiencies = []string{"basket weaving"}
	s.input.SpellSlots = []int{2, -1}
	s.input.Inventory = []dnd5e.InventoryItem{{Name: " "}}

	_, err := dnd5e.NewCharacter(s.input)
	s.Require().Error(err)

	fields := errors.GetFieldErrors(err)
	s.Assert().Contains(fields, "strength")
	s.Assert().Contains(fields, "max_hp")
	s.Assert().Contains(fields, "skill_proficiencies")
	s.Assert().Contains(fields, "spell_slots")
	s.Assert().Contains(fields, "inventory")
}

func (s *CharacterTestSuite) TestNilInput() {
	_, err := dnd5e.NewCharacter(nil)
	s.Assert().True(errors.IsInvalidCharacter(err))
}

func (s *CharacterTestSuite) TestHPMayGoNegative() {
	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)

	char.AdjustHP(-30)
	s.Assert().Equal(-9, char.CurrentHP)

	char.AdjustHP(40)
	s.Assert().Equal(31, char.CurrentHP, "max HP is not enforced by the record")

	char.SetHP(5)
	s.Assert().Equal(5, char.CurrentHP)

	s.Assert().Error(char.SetMaxHP(0))
	s.Assert().Equal(21, char.MaxHP)
	s.Require().NoError(char.SetMaxHP(30))
	s.Assert().Equal(30, char.MaxHP)
}

func (s *CharacterTestSuite) TestSetLevelRevalidatesOnlyLevel() {
	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)

	// An unrelated field that would fail construction does not block a level change.
	char.Name = ""

	s.Require().NoError(char.SetLevel(20, dnd5e.DefaultLevelRange()))
	s.Assert().Equal(20, char.Level)

	err = char.LevelUp(dnd5e.DefaultLevelRange())
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidCharacter(err))
	s.Assert().Equal(20, char.Level)

	s.Require().Error(char.SetLevel(0, dnd5e.LevelRange{}))
	s.Assert().Equal(20, char.Level)
}

func (s *CharacterTestSuite) TestSpellSlots() {
	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)

	s.Require().NoError(char.SetSpellSlots([]int{4, 3, 2}))
	s.Assert().Equal([]int{4, 3, 2, 0, 0, 0, 0, 0, 0}, char.SpellSlots)

	s.Require().NoError(char.AdjustSpellSlot(1, -1))
	s.Require().NoError(char.AdjustSpellSlot(3, -5))
	s.Require().NoError(char.AdjustSpellSlot(9, 1))
	s.Assert().Equal([]int{3, 3, 0, 0, 0, 0, 0, 0, 1}, char.SpellSlots)

	s.Assert().True(errors.IsInvalidCharacter(char.AdjustSpellSlot(0, 1)))
	s.Assert().True(errors.IsInvalidCharacter(char.AdjustSpellSlot(10, 1)))
	s.Assert().True(errors.IsInvalidCharacter(char.SetSpellSlots([]int{1, -1})))
	s.Assert().True(errors.IsInvalidCharacter(char.SetSpellSlots(make([]int, 10))))
	s.Assert().Equal([]int{3, 3, 0, 0, 0, 0, 0, 0, 1}, char.SpellSlots)
}

func (s *CharacterTestSuite) TestInventory() {
	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)

	s.Require().NoError(char.AddItem(dnd5e.InventoryItem{Name: "Rope"}))
	s.Require().NoError(char.AddItem(dnd5e.InventoryItem{Name: "Torch", Quantity: 5}))
	s.Assert().Error(char.AddItem(dnd5e.InventoryItem{Name: ""}))
	s.Assert().Error(char.AddItem(dnd5e.InventoryItem{Name: "Arrow", Quantity: -2}))
	s.Require().Len(char.Inventory, 3)
	s.Assert().Equal("Torch x5", char.Inventory[2].String())

	removed, err := char.RemoveItem(0)
	s.Require().NoError(err)
	s.Assert().Equal("Thieves' tools", removed.Name)

	last, err := char.RemoveLastItem()
	s.Require().NoError(err)
	s.Assert().Equal("Torch", last.Name)
	s.Assert().Equal([]dnd5e.InventoryItem{{Name: "Rope", Quantity: 1}}, char.Inventory)

	_, err = char.RemoveItem(5)
	s.Assert().True(errors.IsInvalidCharacter(err))

	_, err = char.RemoveLastItem()
	s.Require().NoError(err)
	_, err = char.RemoveLastItem()
	s.Assert().True(errors.IsInvalidCharacter(err))
}

func (s *CharacterTestSuite) TestCloneIsDeep() {
	char, err := dnd5e.NewCharacter(s.input)
	s.Require().NoError(err)

	clone := char.Clone()
	clone.SpellSlots[0] = 9
	clone.Inventory[0].Name = "Lockpick"
	clone.SkillProficiencies[0] = dnd5e.SkillArcana

	s.Assert().Equal(0, char.SpellSlots[0])
	s.Assert().Equal("Thieves' tools", char.Inventory[0].Name)
	s.Assert().Equal(dnd5e.SkillPerception, char.SkillProficiencies[0])
}

func (s *CharacterTestSuite) TestParseInventoryItem() {
	testCases := []struct {
		input    string
		expected dnd5e.InventoryItem
	}{
		{"Rope", dnd5e.InventoryItem{Name: "Rope", Quantity: 1}},
		{"Torch x3", dnd5e.InventoryItem{Name: "Torch", Quantity: 3}},
		{"  Bag of Holding X2 ", dnd5e.InventoryItem{Name: "Bag of Holding", Quantity: 2}},
		{"Potion xl", dnd5e.InventoryItem{Name: "Potion xl", Quantity: 1}},
		{"Flask of oil", dnd5e.InventoryItem{Name: "Flask of oil", Quantity: 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Assert().Equal(tc.expected, dnd5e.ParseInventoryItem(tc.input))
		})
	}
}
