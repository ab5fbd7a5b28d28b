package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Spaces are allowed around the sign only; "1 0d6" is not "10d6".
var notationRegex = regexp.MustCompile(`^(\d*)d(\d+)(?:\s*([+-])\s*(\d+))?$`)

// Parse turns a token such as "d20", "2d6+3" or " 4d8 - 1 " into a Request.
// Ability and skill names are not recognized here. Every failure is a
// MALFORMED_EXPRESSION error.
func Parse(token string) (*Request, error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(token)))
	if matches == nil {
		return nil, malformed(token, "expected NdM, NdM+K or NdM-K")
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, malformed(token, "dice count is not a number")
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, malformed(token, "die size is not a number")
	}

	modifier := 0
	if matches[4] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return nil, malformed(token, "modifier is not a number")
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	if reason := checkBounds(count, sides, modifier); reason != "" {
		return nil, malformed(token, reason)
	}

	return &Request{Count: count, Sides: sides, Modifier: modifier}, nil
}

func malformed(token, reason string) *errors.Error {
	return errors.MalformedExpressionf("invalid dice expression %q: %s", token, reason).
		WithMeta("token", token)
}
