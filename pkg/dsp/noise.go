package dsp

import (
	"math"

	"github.com/pkg/errors"
)

// AddNoise adds zero-mean white Gaussian noise with standard deviation sigma to every sample.
// A zero sigma leaves the signal untouched and draws nothing from rng.
func AddNoise(sig Signal, sigma float64, rng Rand) error {
	if sigma < 0 || math.IsNaN(sigma) {
		return errors.Wrapf(ErrInvalidParameter, "noise deviation %v must not be negative", sigma)
	}
	if sigma == 0 {
		return nil
	}
	if rng == nil {
		return errors.Wrap(ErrInvalidParameter, "random generator must be set")
	}

	for i := range sig {
		sig[i] += sigma * rng.NormFloat64()
	}

	return nil
}
