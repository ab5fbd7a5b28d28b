package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// RollKind tells how a token was classified
type RollKind string

// Roll kinds, in the order the resolver tries them
const (
	RollKindAbility RollKind = "ability"
	RollKindSkill   RollKind = "skill"
	RollKindDice    RollKind = "dice"
)

// Resolution is a resolved roll token
type Resolution struct {
	Token   string
	Kind    RollKind
	Ability dnd5e.Ability // set for ability and skill checks
	Skill   dnd5e.Skill   // set for skill checks
	Label   string        // "STR check", "Stealth check" or the dice notation
	Result  *dice.Result
}

// String renders "Stealth check: 1d20+5: [12] +5 = 17"
func (r *Resolution) String() string {
	if r.Kind == RollKindDice {
		return r.Result.String()
	}
	return fmt.Sprintf("%s: %s", r.Label, r.Result)
}

// ResolveRoll classifies token and rolls it for c. Tried in order:
//  1. an ability name ("str", "Dexterity") rolls 1d20 + ability modifier
//  2. a skill name ("stealth", "animal handling") rolls 1d20 + skill bonus
//  3. dice notation ("2d6+3") rolls as written
//
// A trailing "adv" or "dis" word sets the advantage marker. Anything else
// fails with errors.CodeUnrecognizedRollToken. The character is only read.
func ResolveRoll(c *dnd5e.Character, token string, src dice.Source) (*Resolution, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	body, mode := splitMode(token)
	if body == "" {
		return nil, errors.UnrecognizedRollTokenf("empty roll token").WithMeta("token", token)
	}

	resolution := &Resolution{Token: token}
	var req dice.Request

	if ability, ok := dnd5e.ParseAbility(body); ok {
		resolution.Kind = RollKindAbility
		resolution.Ability = ability
		resolution.Label = ability.Short() + " check"
		req = dice.D20(AbilityModifier(c, ability))
	} else if skill, err := dnd5e.ParseSkill(body); err == nil {
		resolution.Kind = RollKindSkill
		resolution.Ability = skill.Ability()
		resolution.Skill = skill
		resolution.Label = skill.DisplayName() + " check"
		req = dice.D20(skillBonus(c, skill))
	} else {
		parsed, err := dice.Parse(body)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnrecognizedRollToken,
				fmt.Sprintf("%q is not an ability, skill or dice expression", strings.TrimSpace(token))).
				WithMeta("token", token)
		}
		resolution.Kind = RollKindDice
		resolution.Label = parsed.String()
		req = *parsed
	}

	req.Mode = mode
	result, err := dice.Evaluate(req, src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", resolution.Label)
	}
	resolution.Result = result

	return resolution, nil
}

var modeWords = map[string]dice.Mode{
	"adv":          dice.ModeAdvantage,
	"advantage":    dice.ModeAdvantage,
	"dis":          dice.ModeDisadvantage,
	"disadvantage": dice.ModeDisadvantage,
}

// splitMode strips a trailing advantage word. A lone "adv" is left as the body.
func splitMode(token string) (string, dice.Mode) {
	fields := strings.Fields(token)
	if len(fields) > 1 {
		if mode, ok := modeWords[strings.ToLower(fields[len(fields)-1])]; ok {
			return strings.Join(fields[:len(fields)-1], " "), mode
		}
	}
	return strings.Join(fields, " "), dice.ModeNormal
}
