package random

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
)

// Source is the random stream every probabilistic function receives
// explicitly. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// New returns a deterministic source for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Game logic randomness, not security critical
}

// Factory hands out a fresh Source for each action.
type Factory func() Source

// NewFactory returns a factory seeding each source from the runtime's
// random generator.
func NewFactory() Factory {
	return func() Source {
		return New(rand.Uint64()) //nolint:gosec // Game logic randomness, not security critical
	}
}

// Seeded returns a factory producing a reproducible sequence of sources, the
// n-th source being seeded with seed+n.
func Seeded(seed uint64) Factory {
	var n atomic.Uint64
	return func() Source {
		return New(seed + n.Add(1) - 1)
	}
}

// Uniform returns a float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// IntRange returns an integer between lo and hi inclusive.
func IntRange(src Source, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// D100 rolls a percentile die (1-100).
func D100(src Source) int {
	return src.IntN(100) + 1
}

// Chance reports success of a pct-percent check.
func Chance(src Source, pct int) bool {
	return D100(src) <= pct
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Weighted picks an index from weights with probability proportional to its
// weight. Non-positive weights are never picked; it returns -1 when no weight
// is positive.
func Weighted(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	roll := src.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
