package dsp

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter is returned for out-of-domain scalar parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidModulationType is returned for an unknown modulation tag.
	ErrInvalidModulationType = errors.New("invalid modulation type")
	// ErrIndexOutOfRange is returned when a stage addresses the signal beyond its bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func checkLength(grid Grid, sig Signal) error {
	if len(sig) != grid.SampleCount() {
		return errors.Wrapf(ErrIndexOutOfRange, "signal has %d samples, grid expects %d", len(sig), grid.SampleCount())
	}

	return nil
}
