// Package clock provides time utilities so storage timestamps and roll
// history expiry can be driven by tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-sheet/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant until it is advanced
type Fixed struct {
	At time.Time
}

// NewFixed returns a clock frozen at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{At: t}
}

// Now returns the frozen instant
func (c *Fixed) Now() time.Time {
	return c.At
}

// Advance moves the frozen instant forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
