package dsp

import (
	"github.com/pkg/errors"
)

// Modulation identifies a modulation scheme.
type Modulation string

const (
	AM Modulation = "am"
	FM Modulation = "fm"
	PM Modulation = "pm"
	// LowFreqPM is only understood by the demodulator. It skips carrier removal and is used when
	// the signal was never modulated.
	LowFreqPM Modulation = "pm-lowfreq"
)

func (m Modulation) String() string { return string(m) }

// ParseModulation returns the modulation named by s.
func ParseModulation(s string) (Modulation, error) {
	switch m := Modulation(s); m {
	case AM, FM, PM, LowFreqPM:
		return m, nil
	}

	return "", errors.Wrapf(ErrInvalidModulationType, "%q", s)
}

// CanModulate reports whether m is accepted by Modulate.
func (m Modulation) CanModulate() bool {
	return m == AM || m == FM || m == PM
}

// CanDemodulate reports whether m is accepted by Demodulate.
func (m Modulation) CanDemodulate() bool {
	return m.CanModulate() || m == LowFreqPM
}

// Modulate multiplies the baseband signal by the carrier of m.
func Modulate(grid Grid, sig Signal, m Modulation) error {
	if !m.CanModulate() {
		return errors.Wrapf(ErrInvalidModulationType, "modulator does not support %q", m)
	}
	err := checkLength(grid, sig)
	if err != nil {
		return err
	}

	switch m {
	case AM:
		c := carrier(grid, carrierFactor)
		for i := range sig {
			sig[i] = (sig[i] + 1) * 0.5 * c[i]
		}
	case PM:
		c := carrier(grid, carrierFactor)
		for i := range sig {
			sig[i] *= c[i]
		}
	case FM:
		c1 := carrier(grid, carrierFMFirst)
		c2 := carrier(grid, carrierFMSecond)
		for i, v := range sig {
			sig[i] = v*c1[i] + (-v)*c2[i]
		}
	}

	return nil
}

// Demodulate removes the carrier of m and replaces the waveform by +1/-1 symbol decisions.
//
// The decision taken on window k is written to window k+1, so the output lags the input by one symbol
// and window 0 keeps the carrier-stripped waveform.
func Demodulate(grid Grid, sig Signal, m Modulation) error {
	if !m.CanDemodulate() {
		return errors.Wrapf(ErrInvalidModulationType, "demodulator does not support %q", m)
	}
	err := checkLength(grid, sig)
	if err != nil {
		return err
	}

	threshold := 0.0
	switch m {
	case AM:
		threshold = 0.25
		fallthrough
	case PM:
		c := carrier(grid, carrierFactor)
		for i := range sig {
			sig[i] *= c[i]
		}
	case FM:
		c1 := carrier(grid, carrierFMFirst)
		c2 := carrier(grid, carrierFMSecond)
		for i := range sig {
			sig[i] *= c1[i] - c2[i]
		}
	case LowFreqPM:
	}

	decide(grid, sig, threshold)

	return nil
}

// decide integrates each symbol window and writes the decision into the following window.
func decide(grid Grid, sig Signal, threshold float64) {
	length := grid.SymbolLength()
	dt := grid.SampleInterval()
	out := sig.Clone()
	for i := 0; i < len(sig)-length; i += length {
		sum := -threshold
		for j := 0; j < length; j++ {
			sum += (sig[i+j] + sig[i+j+1]) * dt
		}
		decision := -1.0
		if sum >= 0.5 {
			decision = 1
		}
		out[i+length : i+2*length].fill(decision)
	}
	copy(sig, out)
}
