package dice

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_source.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/dice Source

// Source draws uniformly distributed integers. Evaluate never reaches for a
// package-level generator; callers pass the Source they want.
type Source interface {
	// Between returns an integer in [lo, hi] inclusive
	Between(lo, hi int) (int, error)
}

// SeededSource is a deterministic Source. Two sources built from the same
// seed produce the same sequence. It is not safe for concurrent use.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic source from seed
func NewSeeded(seed uint64) *SeededSource {
	return &SeededSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Between returns an integer in [lo, hi] inclusive
func (s *SeededSource) Between(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}
	return lo + s.rng.IntN(hi-lo+1), nil
}

var _ Source = (*SeededSource)(nil)
