package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func TestParseAbility(t *testing.T) {
	testCases := []struct {
		input    string
		expected dnd5e.Ability
		ok       bool
	}{
		{"str", dnd5e.AbilityStrength, true},
		{"STR", dnd5e.AbilityStrength, true},
		{"Dexterity", dnd5e.AbilityDexterity, true},
		{" wis ", dnd5e.AbilityWisdom, true},
		{"cha", dnd5e.AbilityCharisma, true},
		{"intelligence", dnd5e.AbilityIntelligence, true},
		{"luck", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			ability, ok := dnd5e.ParseAbility(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, ability)
		})
	}
}

func TestAbilityNames(t *testing.T) {
	assert.Equal(t, "Constitution", dnd5e.AbilityConstitution.Name())
	assert.Equal(t, "CON", dnd5e.AbilityConstitution.Short())
	assert.Len(t, dnd5e.Abilities(), 6)
}

func TestSkillCatalog(t *testing.T) {
	expected := map[dnd5e.Skill]dnd5e.Ability{
		dnd5e.SkillAcrobatics:     dnd5e.AbilityDexterity,
		dnd5e.SkillAnimalHandling: dnd5e.AbilityWisdom,
		dnd5e.SkillArcana:         dnd5e.AbilityIntelligence,
		dnd5e.SkillAthletics:      dnd5e.AbilityStrength,
		dnd5e.SkillDeception:      dnd5e.AbilityCharisma,
		dnd5e.SkillHistory:        dnd5e.AbilityIntelligence,
		dnd5e.SkillInsight:        dnd5e.AbilityWisdom,
		dnd5e.SkillIntimidation:   dnd5e.AbilityCharisma,
		dnd5e.SkillInvestigation:  dnd5e.AbilityIntelligence,
		dnd5e.SkillMedicine:       dnd5e.AbilityWisdom,
		dnd5e.SkillNature:         dnd5e.AbilityIntelligence,
		dnd5e.SkillPerception:     dnd5e.AbilityWisdom,
		dnd5e.SkillPerformance:    dnd5e.AbilityCharisma,
		dnd5e.SkillPersuasion:     dnd5e.AbilityCharisma,
		dnd5e.SkillReligion:       dnd5e.AbilityIntelligence,
		dnd5e.SkillSleightOfHand:  dnd5e.AbilityDexterity,
		dnd5e.SkillStealth:        dnd5e.AbilityDexterity,
		dnd5e.SkillSurvival:       dnd5e.AbilityWisdom,
	}

	skills := dnd5e.Skills()
	require.Len(t, skills, len(expected))
	for _, skill := range skills {
		assert.Equal(t, expected[skill], skill.Ability(), skill)
	}

	// Mutating the returned slice does not touch the catalog.
	skills[0] = "juggling"
	assert.Equal(t, dnd5e.SkillAcrobatics, dnd5e.Skills()[0])
}

func TestParseSkill(t *testing.T) {
	testCases := []struct {
		input    string
		expected dnd5e.Skill
	}{
		{"stealth", dnd5e.SkillStealth},
		{"Perception", dnd5e.SkillPerception},
		{"animal handling", dnd5e.SkillAnimalHandling},
		{"Animal-Handling", dnd5e.SkillAnimalHandling},
		{"sleight_of_hand", dnd5e.SkillSleightOfHand},
		{"  Sleight  of Hand ", dnd5e.SkillSleightOfHand},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			skill, err := dnd5e.ParseSkill(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, skill)
		})
	}

	_, err := dnd5e.ParseSkill("basket weaving")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownSkill(err))
}

func TestSkillDisplayName(t *testing.T) {
	assert.Equal(t, "Sleight of Hand", dnd5e.SkillSleightOfHand.DisplayName())
	assert.Equal(t, "Animal Handling", dnd5e.SkillAnimalHandling.DisplayName())
	assert.Equal(t, "Stealth", dnd5e.SkillStealth.DisplayName())
}
