// Package engine computes derived sheet values (ability modifiers,
// proficiency, skill bonuses) and resolves roll tokens against a character.
// Everything here is pure: no storage, no locking, no hidden randomness.
package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Proficiency bonus brackets. Levels below MinProficiencyLevel use the first
// bracket and levels above MaxProficiencyLevel use the last.
const (
	MinProficiencyLevel = 1
	MaxProficiencyLevel = 20
)

// ScoreModifier returns floor((score - 10) / 2). Go's integer division
// truncates toward zero, so odd scores below 10 need the extra step down:
// 9 gives -1 and 7 gives -2.
func ScoreModifier(score int) int {
	diff := score - 10
	mod := diff / 2
	if diff < 0 && diff%2 != 0 {
		mod--
	}
	return mod
}

// AbilityModifier returns the modifier for one of the character's abilities
func AbilityModifier(c *dnd5e.Character, ability dnd5e.Ability) int {
	return ScoreModifier(c.AbilityScores.Get(ability))
}

// ProficiencyBonus returns +2 at levels 1-4 rising by one every four levels
// to +6 at 17-20. Out-of-range levels are clamped to the nearest bracket.
func ProficiencyBonus(level int) int {
	level = min(max(level, MinProficiencyLevel), MaxProficiencyLevel)
	return 2 + (level-1)/4
}

// SkillBonus returns the mapped ability modifier, plus the proficiency bonus
// when the character is proficient. Unknown names fail with
// errors.CodeUnknownSkill.
func SkillBonus(c *dnd5e.Character, skillName string) (int, error) {
	skill, err := dnd5e.ParseSkill(skillName)
	if err != nil {
		return 0, err
	}
	return skillBonus(c, skill), nil
}

func skillBonus(c *dnd5e.Character, skill dnd5e.Skill) int {
	bonus := AbilityModifier(c, skill.Ability())
	if c.HasProficiency(skill) {
		bonus += ProficiencyBonus(c.Level)
	}
	return bonus
}

// SkillLine is one row of a rendered skill list
type SkillLine struct {
	Skill      dnd5e.Skill
	Ability    dnd5e.Ability
	Proficient bool
	Bonus      int
}

// SkillTable returns a line for every catalog skill in catalog order
func SkillTable(c *dnd5e.Character) []SkillLine {
	skills := dnd5e.Skills()
	lines := make([]SkillLine, len(skills))
	for i, skill := range skills {
		lines[i] = SkillLine{
			Skill:      skill,
			Ability:    skill.Ability(),
			Proficient: c.HasProficiency(skill),
			Bonus:      skillBonus(c, skill),
		}
	}
	return lines
}
