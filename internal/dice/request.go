// Package dice parses NdM[+/-K] roll tokens and evaluates them against an
// injected random source.
package dice

import (
	"fmt"
	"strings"
)

// Mode is the advantage marker on a roll request
type Mode int

// Roll modes. With advantage every die is rolled twice and the higher
// result is kept; disadvantage keeps the lower.
const (
	ModeNormal Mode = iota
	ModeAdvantage
	ModeDisadvantage
)

// String returns the short form used in roll tokens
func (m Mode) String() string {
	switch m {
	case ModeAdvantage:
		return "adv"
	case ModeDisadvantage:
		return "dis"
	default:
		return ""
	}
}

const (
	// MinSides is the smallest die that can be rolled
	MinSides = 2
	// MaxCount bounds the number of dice in a single request
	MaxCount = 1000
	// MaxSides bounds the die size in a single request
	MaxSides = 1000000
	// MaxModifier bounds the flat modifier in either direction
	MaxModifier = 1000000
)

// Request is a parsed roll: Count dice of Sides faces plus Modifier
type Request struct {
	Count    int  `json:"count"`
	Sides    int  `json:"sides"`
	Modifier int  `json:"modifier"`
	Mode     Mode `json:"mode,omitempty"`
}

// D20 builds the 1d20+modifier request used for ability and skill checks
func D20(modifier int) Request {
	return Request{Count: 1, Sides: 20, Modifier: modifier}
}

// Validate checks the count, size and modifier bounds
func (r Request) Validate() error {
	if reason := checkBounds(r.Count, r.Sides, r.Modifier); reason != "" {
		return malformed(r.String(), reason)
	}
	return nil
}

func checkBounds(count, sides, modifier int) string {
	if count < 1 || count > MaxCount {
		return fmt.Sprintf("dice count must be between 1 and %d", MaxCount)
	}
	if sides < MinSides || sides > MaxSides {
		return fmt.Sprintf("die size must be between %d and %d", MinSides, MaxSides)
	}
	if modifier < -MaxModifier || modifier > MaxModifier {
		return fmt.Sprintf("modifier must be between -%d and %d", MaxModifier, MaxModifier)
	}
	return ""
}

// String formats the request back into notation. The count is always
// written, so "d20" comes back as "1d20".
func (r Request) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", r.Count, r.Sides)
	switch {
	case r.Modifier > 0:
		fmt.Fprintf(&b, "+%d", r.Modifier)
	case r.Modifier < 0:
		fmt.Fprintf(&b, "%d", r.Modifier)
	}
	return b.String()
}
