package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
)

type wizardStep int

const (
	stepName wizardStep = iota
	stepClass
	stepRace
	stepAbilities
	stepMaxHP
	stepArmorClass
	stepSpeed
	stepSkills
)

var stepTitles = map[wizardStep]string{
	stepName:       "Create: Name",
	stepClass:      "Create: Class",
	stepRace:       "Create: Race",
	stepAbilities:  "Create: Abilities STR DEX CON INT WIS CHA",
	stepMaxHP:      "Create: HP Max",
	stepArmorClass: "Create: Armor Class (AC)",
	stepSpeed:      "Create: Speed (ft)",
	stepSkills:     "Create: Skills (comma or semicolon separated)",
}

var stepPrompts = map[wizardStep]string{
	stepName:       "Enter name (blank for " + dnd5e.DefaultName + ")",
	stepClass:      "Enter class (blank for " + dnd5e.DefaultClass + ")",
	stepRace:       "Enter race (blank for " + dnd5e.DefaultRace + ")",
	stepAbilities:  "Enter six scores (e.g. 15 14 13 12 10 8), 'roll' for 4d6 drop lowest or 'roll classic' for 3d6",
	stepMaxHP:      "Enter HP max (number)",
	stepArmorClass: "Enter armor class (number)",
	stepSpeed:      "Enter speed in feet (number)",
	stepSkills:     "Enter skills separated by comma or semicolon (e.g. perception, stealth)",
}

// wizard collects the answers for a new character one step at a time
type wizard struct {
	step    wizardStep
	draftID string
	input   character.CreateInput
}

func newWizard(draftID string) *wizard {
	return &wizard{step: stepName, draftID: draftID}
}

func (w *wizard) title() string {
	return stepTitles[w.step]
}

func (w *wizard) prompt() string {
	return stepPrompts[w.step]
}

func (w *wizard) done() bool {
	return w.step > stepSkills
}

// rollRequest reports whether text asks for rolled scores and which method
func rollRequest(text string) (string, bool) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 || fields[0] != "roll" {
		return "", false
	}
	if len(fields) > 1 && fields[1] == dicesvc.MethodClassic {
		return dicesvc.MethodClassic, true
	}
	return dicesvc.MethodStandard, true
}

// submit records the answer for the current step and moves to the next one.
// On error the step is unchanged.
func (w *wizard) submit(text string) error {
	text = strings.TrimSpace(text)

	switch w.step {
	case stepName:
		w.input.Name = text
	case stepClass:
		w.input.Class = text
	case stepRace:
		w.input.Race = text
	case stepAbilities:
		abilities, err := parseAbilities(text)
		if err != nil {
			return err
		}
		w.input.Abilities = abilities
	case stepMaxHP:
		hp, err := parseNumber(text, 1)
		if err != nil {
			return err
		}
		w.input.MaxHP = hp
	case stepArmorClass:
		ac, err := parseNumber(text, 0)
		if err != nil {
			return err
		}
		w.input.ArmorClass = ac
	case stepSpeed:
		speed, err := parseNumber(text, 0)
		if err != nil {
			return err
		}
		w.input.Speed = speed
	case stepSkills:
		skills, err := parseSkills(text)
		if err != nil {
			return err
		}
		w.input.SkillProficiencies = skills
	}

	w.step++
	return nil
}

func (w *wizard) setRolledScores(scores []int) {
	abilities := dnd5e.Abilities()
	w.input.Abilities = make(map[dnd5e.Ability]int, len(abilities))
	for i, ability := range abilities {
		if i < len(scores) {
			w.input.Abilities[ability] = scores[i]
		}
	}
	w.step = stepMaxHP
}

// parseAbilities reads six whitespace separated scores in sheet order.
// Blank input keeps the defaults.
func parseAbilities(text string) (map[dnd5e.Ability]int, error) {
	if text == "" {
		return nil, nil
	}

	fields := strings.Fields(text)
	abilities := dnd5e.Abilities()
	if len(fields) != len(abilities) {
		return nil, errors.InvalidArgumentf("enter exactly %d numbers", len(abilities))
	}

	scores := make(map[dnd5e.Ability]int, len(abilities))
	for i, field := range fields {
		score, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.InvalidArgumentf("%q is not a number", field)
		}
		if score < dnd5e.MinAbilityScore || score > dnd5e.MaxAbilityScore {
			return nil, errors.InvalidArgumentf("%s must be between %d and %d",
				abilities[i].Short(), dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore)
		}
		scores[abilities[i]] = score
	}
	return scores, nil
}

// parseNumber reads a single integer of at least minValue. Blank input
// returns 0 so the service default applies.
func parseNumber(text string, minValue int) (int, error) {
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.InvalidArgument("please enter a valid number")
	}
	if n < minValue {
		return 0, errors.InvalidArgumentf("must be at least %d", minValue)
	}
	return n, nil
}

// parseSkills splits on commas or semicolons and checks every name
func parseSkills(text string) ([]string, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, err := dnd5e.ParseSkill(name); err != nil {
			return nil, err
		}
		skills = append(skills, name)
	}
	return skills, nil
}

func formatScores(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " ")
}

func formatModifier(n int) string {
	return fmt.Sprintf("%+d", n)
}
