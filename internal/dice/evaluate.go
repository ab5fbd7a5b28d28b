package dice

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Result is an evaluated roll. Rolls holds the kept dice in roll order and
// Dropped the dice discarded by advantage or disadvantage.
type Result struct {
	Request Request `json:"request"`
	Rolls   []int   `json:"rolls"`
	Dropped []int   `json:"dropped,omitempty"`
	Total   int     `json:"total"`
}

// DiceTotal is the sum of the kept dice without the modifier
func (r *Result) DiceTotal() int {
	sum := 0
	for _, v := range r.Rolls {
		sum += v
	}
	return sum
}

// String renders the roll as "2d6+3: [4 5] +3 = 12"
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString(r.Request.String())
	if r.Request.Mode != ModeNormal {
		fmt.Fprintf(&b, " %s", r.Request.Mode)
	}
	fmt.Fprintf(&b, ": %v", r.Rolls)
	if len(r.Dropped) > 0 {
		fmt.Fprintf(&b, " dropped %v", r.Dropped)
	}
	if r.Request.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", r.Request.Modifier)
	}
	fmt.Fprintf(&b, " = %d", r.Total)
	return b.String()
}

// Evaluate rolls req against src. Each die is a draw in [1, Sides]; the
// total is the kept dice plus the modifier and is never clamped.
func Evaluate(req Request, src Source) (*Result, error) {
	if src == nil {
		return nil, errors.InvalidArgument("random source is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Request: req,
		Rolls:   make([]int, 0, req.Count),
	}

	for i := 0; i < req.Count; i++ {
		kept, err := draw(src, req.Sides)
		if err != nil {
			return nil, err
		}

		if req.Mode != ModeNormal {
			other, err := draw(src, req.Sides)
			if err != nil {
				return nil, err
			}
			if (req.Mode == ModeAdvantage && other > kept) ||
				(req.Mode == ModeDisadvantage && other < kept) {
				kept, other = other, kept
			}
			result.Dropped = append(result.Dropped, other)
		}

		result.Rolls = append(result.Rolls, kept)
	}

	result.Total = result.DiceTotal() + req.Modifier
	return result, nil
}

// Roll parses token and evaluates it
func Roll(token string, src Source) (*Result, error) {
	req, err := Parse(token)
	if err != nil {
		return nil, err
	}
	return Evaluate(*req, src)
}

func draw(src Source, sides int) (int, error) {
	v, err := src.Between(1, sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", sides)
	}
	if v < 1 || v > sides {
		return 0, errors.Internalf("random source returned %d for d%d", v, sides)
	}
	return v, nil
}
