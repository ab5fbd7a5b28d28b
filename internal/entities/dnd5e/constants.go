package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Ability is one of the six core ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

var abilityOrder = [...]Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Abilities returns the six abilities in sheet order (STR DEX CON INT WIS CHA)
func Abilities() []Ability {
	out := make([]Ability, len(abilityOrder))
	copy(out, abilityOrder[:])
	return out
}

// Name returns the full ability name, e.g. "Strength"
func (a Ability) Name() string {
	return abilityNames[a]
}

// Short returns the upper-case abbreviation, e.g. "STR"
func (a Ability) Short() string {
	return strings.ToUpper(string(a))
}

// ParseAbility matches a short or full ability name, ignoring case
func ParseAbility(name string) (Ability, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range abilityOrder {
		if key == string(a) || key == strings.ToLower(abilityNames[a]) {
			return a, true
		}
	}
	return "", false
}

// Skill is a key from the fixed skill catalog, e.g. "sleight-of-hand"
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal-handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight-of-hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// skillTable is the catalog in alphabetical order with each skill's ability.
// It is never written after package init.
var skillTable = [...]struct {
	skill   Skill
	ability Ability
}{
	{SkillAcrobatics, AbilityDexterity},
	{SkillAnimalHandling, AbilityWisdom},
	{SkillArcana, AbilityIntelligence},
	{SkillAthletics, AbilityStrength},
	{SkillDeception, AbilityCharisma},
	{SkillHistory, AbilityIntelligence},
	{SkillInsight, AbilityWisdom},
	{SkillIntimidation, AbilityCharisma},
	{SkillInvestigation, AbilityIntelligence},
	{SkillMedicine, AbilityWisdom},
	{SkillNature, AbilityIntelligence},
	{SkillPerception, AbilityWisdom},
	{SkillPerformance, AbilityCharisma},
	{SkillPersuasion, AbilityCharisma},
	{SkillReligion, AbilityIntelligence},
	{SkillSleightOfHand, AbilityDexterity},
	{SkillStealth, AbilityDexterity},
	{SkillSurvival, AbilityWisdom},
}

var skillAbilities = func() map[Skill]Ability {
	m := make(map[Skill]Ability, len(skillTable))
	for _, row := range skillTable {
		m[row.skill] = row.ability
	}
	return m
}()

// Skills returns the catalog in alphabetical order
func Skills() []Skill {
	out := make([]Skill, len(skillTable))
	for i, row := range skillTable {
		out[i] = row.skill
	}
	return out
}

// Ability returns the ability the skill is based on
func (s Skill) Ability() Ability {
	return skillAbilities[s]
}

// Valid reports whether s is in the catalog
func (s Skill) Valid() bool {
	_, ok := skillAbilities[s]
	return ok
}

// DisplayName returns the title-cased name, e.g. "Sleight of Hand"
func (s Skill) DisplayName() string {
	words := strings.Split(string(s), "-")
	for i, w := range words {
		if w == "of" && i > 0 {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseSkill matches a skill name ignoring case. Spaces, hyphens and
// underscores are interchangeable, so "Animal Handling" and
// "animal_handling" both resolve.
func ParseSkill(name string) (Skill, error) {
	skill := Skill(normalizeSkillName(name))
	if !skill.Valid() {
		return "", errors.UnknownSkillf("unknown skill %q", strings.TrimSpace(name)).
			WithMeta("skill", name)
	}
	return skill, nil
}

func normalizeSkillName(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})
	return strings.Join(fields, "-")
}
