package dicemock

import (
	"fmt"
	"sync"
)

// ScriptedSource returns predetermined values in order. It fails once the
// script runs out or a value does not fit the requested range.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewScriptedSource creates a source that yields values in order
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Push appends more values to the script
func (s *ScriptedSource) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining reports how many scripted values have not been used
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.next
}

// Between returns the next scripted value
func (s *ScriptedSource) Between(lo, hi int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.values) {
		return 0, fmt.Errorf("no more scripted rolls available (used %d of %d)", s.next, len(s.values))
	}

	v := s.values[s.next]
	s.next++
	if v < lo || v > hi {
		return 0, fmt.Errorf("scripted roll %d outside [%d, %d]", v, lo, hi)
	}
	return v, nil
}
