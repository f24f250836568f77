package dsp

import "github.com/pkg/errors"

// ErrorCount is the result of comparing a received signal with its reference.
type ErrorCount struct {
	// Mismatches is the number of differing samples.
	Mismatches int
	// Compared is the number of compared samples.
	Compared     int
	SymbolLength int
	// Errors is Mismatches expressed in whole symbols.
	Errors int
}

// Rate returns the fraction of compared samples that differ.
func (c ErrorCount) Rate() float64 {
	if c.Compared == 0 {
		return 0
	}

	return float64(c.Mismatches) / float64(c.Compared)
}

// SymbolErrors returns Mismatches divided by the symbol length, without truncation.
func (c ErrorCount) SymbolErrors() float64 {
	if c.SymbolLength == 0 {
		return 0
	}

	return float64(c.Mismatches) / float64(c.SymbolLength)
}

// CountErrors compares sig, shifted back by delay symbol periods, with ref.
func CountErrors(grid Grid, sig, ref Signal, delay int) (ErrorCount, error) {
	if delay < 0 {
		return ErrorCount{}, errors.Wrapf(ErrInvalidParameter, "delay %d must not be negative", delay)
	}
	length := grid.SymbolLength()
	offset := delay * length
	if offset > len(sig) {
		return ErrorCount{}, errors.Wrapf(ErrIndexOutOfRange, "delay of %d symbols exceeds the %d samples of the signal", delay, len(sig))
	}
	compared := len(sig) - offset
	if compared > len(ref) {
		return ErrorCount{}, errors.Wrapf(ErrIndexOutOfRange, "reference has %d samples, %d needed", len(ref), compared)
	}

	count := ErrorCount{Compared: compared, SymbolLength: length}
	for i := 0; i < compared; i++ {
		if sig[i+offset] != ref[i] {
			count.Mismatches++
		}
	}
	if length > 0 {
		count.Errors = count.Mismatches / length
	}

	return count, nil
}
