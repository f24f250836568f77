package dsp

import (
	"math"

	"github.com/pkg/errors"
)

// Tolerance is the absolute tolerance used to check that a timing value is a multiple of another.
const Tolerance = 1e-6

// Grid is the discrete time base of a simulation.
type Grid struct {
	endTime        float64
	digitTimeSlot  float64
	sampleInterval float64
	sampleCount    int
	symbolLength   int
}

// NewGrid validates the timing parameters and derives the sample counts.
func NewGrid(endTime, digitTimeSlot, sampleInterval float64) (Grid, error) {
	if endTime <= 0 || digitTimeSlot <= 0 || sampleInterval <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidParameter,
			"timing parameters must be positive, got end time %v, digit time slot %v, sample interval %v",
			endTime, digitTimeSlot, sampleInterval)
	}

	symbols, ok := multiple(endTime, digitTimeSlot)
	if !ok {
		return Grid{}, errors.Wrapf(ErrInvalidParameter, "end time %v must be a multiple of digit time slot %v", endTime, digitTimeSlot)
	}

	symbolLength, ok := multiple(digitTimeSlot, sampleInterval)
	if !ok {
		return Grid{}, errors.Wrapf(ErrInvalidParameter, "digit time slot %v must be a multiple of sample interval %v", digitTimeSlot, sampleInterval)
	}

	return Grid{
		endTime:        endTime,
		digitTimeSlot:  digitTimeSlot,
		sampleInterval: sampleInterval,
		sampleCount:    symbols * symbolLength,
		symbolLength:   symbolLength,
	}, nil
}

// multiple reports whether x is a whole, non-zero multiple of y and returns the factor.
func multiple(x, y float64) (int, bool) {
	n := math.Round(x / y)
	if n < 1 || math.IsInf(n, 0) {
		return 0, false
	}

	if math.Abs(x-n*y) >= Tolerance {
		return 0, false
	}

	return int(n), true
}

func (g Grid) EndTime() float64        { return g.endTime }
func (g Grid) DigitTimeSlot() float64  { return g.digitTimeSlot }
func (g Grid) SampleInterval() float64 { return g.sampleInterval }

// SampleCount is the number of samples of a signal on this grid.
func (g Grid) SampleCount() int { return g.sampleCount }

// SymbolLength is the number of samples per digit time slot.
func (g Grid) SymbolLength() int { return g.symbolLength }

// SymbolCount is the number of symbol windows of a signal on this grid.
func (g Grid) SymbolCount() int {
	if g.symbolLength == 0 {
		return 0
	}

	return g.sampleCount / g.symbolLength
}

// NewSignal returns a zeroed signal sized for the grid.
func (g Grid) NewSignal() Signal {
	return make(Signal, g.sampleCount)
}
