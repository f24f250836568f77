package dsp

import "github.com/pkg/errors"

// Multipath replaces sig by the sum of len(coeffs) copies of itself, path i being delayed by i symbol
// periods and scaled by coeffs[i].
func Multipath(grid Grid, sig Signal, coeffs []float64) error {
	if len(coeffs) == 0 {
		return errors.Wrap(ErrInvalidParameter, "multipath channel needs at least one path")
	}
	err := checkLength(grid, sig)
	if err != nil {
		return err
	}

	length := grid.SymbolLength()
	paths := make([][]float64, len(coeffs))
	for i := range paths {
		paths[i] = sig.delayed(i*length, 1)
	}

	for j := range sig {
		sig[j] = 0
		for i, path := range paths {
			sig[j] += path[j] * coeffs[i]
		}
	}

	return nil
}
