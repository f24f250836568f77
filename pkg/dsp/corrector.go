package dsp

import (
	"math"

	"github.com/pkg/errors"
)

// CorrectRecursive applies the recursive corrector with taps gamma0 and gamma1 block by block.
//
// A feedback value is carried from one symbol block to the next: every sample of block d becomes
// (sample+val)/gamma0 and val becomes -(gamma1/gamma0)*(val+first sample of block d).
func CorrectRecursive(grid Grid, sig Signal, gamma0, gamma1 float64) error {
	if gamma0 == 0 {
		return errors.Wrap(ErrInvalidParameter, "recursive corrector needs a non-zero first coefficient")
	}
	err := checkLength(grid, sig)
	if err != nil {
		return err
	}

	length := grid.SymbolLength()
	ratio := gamma1 / gamma0
	val := 0.0
	for start := 0; start < len(sig); start += length {
		next := -ratio * (val + sig[start])
		end := min(start+length, len(sig))
		for i := start; i < end; i++ {
			sig[i] = (sig[i] + val) / gamma0
		}
		val = next
	}

	return nil
}

// CorrectNonRecursive applies the finite corrector made of taps+1 delayed replicas of the signal,
// replica i being delayed by i symbols and scaled by (-gamma0/gamma1)^(taps-i).
func CorrectNonRecursive(grid Grid, sig Signal, taps int, gamma0, gamma1 float64) error {
	if gamma1 == 0 {
		return errors.Wrap(ErrInvalidParameter, "non-recursive corrector needs a non-zero second coefficient")
	}
	if taps < 0 {
		return errors.Wrapf(ErrInvalidParameter, "tap count %d must not be negative", taps)
	}
	err := checkLength(grid, sig)
	if err != nil {
		return err
	}

	length := grid.SymbolLength()
	k := -gamma0 / gamma1
	replicas := make([][]float64, taps+1)
	for i := range replicas {
		replicas[i] = sig.delayed(i*length, math.Pow(k, float64(taps-i)))
	}

	for j := range sig {
		sig[j] = 0
		for _, replica := range replicas {
			sig[j] += replica[j] / gamma1
		}
	}

	return nil
}
