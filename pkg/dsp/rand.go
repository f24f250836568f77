package dsp

import "golang.org/x/exp/rand"

// Rand is the source of randomness used by the bit source and the noise injector.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var _ Rand = (*rand.Rand)(nil)
