package rpgtoolkit

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// RollerSource draws dice.Source values from an rpg-toolkit roller
type RollerSource struct {
	roller toolkitdice.Roller
}

// NewSource adapts roller. A nil roller uses the toolkit's crypto-backed
// default.
func NewSource(roller toolkitdice.Roller) *RollerSource {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	return &RollerSource{roller: roller}
}

// Between returns an integer in [lo, hi] inclusive
func (s *RollerSource) Between(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}
	if hi == lo {
		return lo, nil
	}

	face, err := s.roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrap(err, "toolkit roller failed")
	}
	return lo + face - 1, nil
}

var _ dice.Source = (*RollerSource)(nil)
