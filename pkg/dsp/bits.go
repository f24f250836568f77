package dsp

import (
	"math"

	"github.com/pkg/errors"
)

// GenerateBits fills sig with a bipolar NRZ random sequence where each symbol window is +1 with probability p
// and -1 otherwise. The degenerate probabilities 0 and 1 fill the whole signal without drawing from rng.
func GenerateBits(grid Grid, sig Signal, p float64, rng Rand) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return errors.Wrapf(ErrInvalidParameter, "probability %v must be in [0, 1]", p)
	}
	err := checkLength(grid, sig)
	if err != nil {
		return err
	}

	switch p {
	case 0:
		sig.fill(-1)
		return nil
	case 1:
		sig.fill(1)
		return nil
	}

	if rng == nil {
		return errors.Wrap(ErrInvalidParameter, "random generator must be set")
	}

	length := grid.SymbolLength()
	for k := 0; k < grid.SymbolCount(); k++ {
		bit := math.Round(rng.Float64() - 0.5 + p)
		if bit == 0 {
			bit = -1
		}
		sig.Window(k, length).fill(bit)
	}

	return nil
}
