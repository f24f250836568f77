package pipeline

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

// Stage is one configured element of a link. The set of stages is closed: it is implemented by
// BitSource, NoiseInjector, Modulator, Demodulator, MultipathChannel, Corrector and ErrorCounter.
type Stage interface {
	Kind() model.StageKind
	// Detail is a short description of the stage parameters.
	Detail() string
	validate() error
}

// BitSource fills the signal with random bipolar symbols.
type BitSource struct {
	// Probability of emitting +1.
	Probability float64
}

// NewBitSource returns a bit source emitting +1 with probability p.
func NewBitSource(p float64) (BitSource, error) {
	return validated(BitSource{Probability: p})
}

func (BitSource) Kind() model.StageKind { return model.BitSourceKind }
func (s BitSource) Detail() string      { return "p=" + formatFloat(s.Probability) }

func (s BitSource) validate() error {
	if s.Probability < 0 || s.Probability > 1 || math.IsNaN(s.Probability) {
		return errors.Wrapf(dsp.ErrInvalidParameter, "probability %v must be in [0, 1]", s.Probability)
	}

	return nil
}

// NoiseInjector adds white Gaussian noise.
type NoiseInjector struct {
	Sigma float64
}

// NewNoiseInjector returns a noise injector with standard deviation sigma.
func NewNoiseInjector(sigma float64) (NoiseInjector, error) {
	return validated(NoiseInjector{Sigma: sigma})
}

func (NoiseInjector) Kind() model.StageKind { return model.NoiseInjectorKind }
func (s NoiseInjector) Detail() string      { return "sigma=" + formatFloat(s.Sigma) }

func (s NoiseInjector) validate() error {
	if s.Sigma < 0 || math.IsNaN(s.Sigma) {
		return errors.Wrapf(dsp.ErrInvalidParameter, "noise deviation %v must not be negative", s.Sigma)
	}

	return nil
}

// Modulator puts the baseband signal on a carrier.
type Modulator struct {
	Type dsp.Modulation
}

// NewModulator returns a modulator for m.
func NewModulator(m dsp.Modulation) (Modulator, error) {
	return validated(Modulator{Type: m})
}

func (Modulator) Kind() model.StageKind { return model.ModulatorKind }
func (s Modulator) Detail() string      { return s.Type.String() }

func (s Modulator) validate() error {
	if !s.Type.CanModulate() {
		return errors.Wrapf(dsp.ErrInvalidModulationType, "modulator does not support %q", s.Type)
	}

	return nil
}

// Demodulator recovers the symbols. It delays the signal by one symbol.
type Demodulator struct {
	Type dsp.Modulation
}

// NewDemodulator returns a demodulator for m.
func NewDemodulator(m dsp.Modulation) (Demodulator, error) {
	return validated(Demodulator{Type: m})
}

func (Demodulator) Kind() model.StageKind { return model.DemodulatorKind }
func (s Demodulator) Detail() string      { return s.Type.String() }

func (s Demodulator) validate() error {
	if !s.Type.CanDemodulate() {
		return errors.Wrapf(dsp.ErrInvalidModulationType, "demodulator does not support %q", s.Type)
	}

	return nil
}

// MultipathChannel sums delayed and scaled copies of the signal, one per path.
type MultipathChannel struct {
	// Coefficients holds the gain of each path; path i is delayed by i symbols.
	Coefficients []float64
}

// NewMultipathChannel returns a channel of numPaths paths. There must be one coefficient per path.
func NewMultipathChannel(numPaths int, coeffs []float64) (MultipathChannel, error) {
	if numPaths < 1 {
		return MultipathChannel{}, errors.Wrapf(dsp.ErrInvalidParameter, "number of paths %d must be positive", numPaths)
	}
	if len(coeffs) < numPaths {
		return MultipathChannel{}, errors.Wrapf(dsp.ErrInvalidParameter, "insufficient number of coefficients: %d for %d paths", len(coeffs), numPaths)
	}
	if len(coeffs) > numPaths {
		return MultipathChannel{}, errors.Wrapf(dsp.ErrInvalidParameter, "excessive number of coefficients: %d for %d paths", len(coeffs), numPaths)
	}

	return MultipathChannel{Coefficients: append([]float64(nil), coeffs...)}, nil
}

func (MultipathChannel) Kind() model.StageKind { return model.MultipathChannelKind }
func (s MultipathChannel) Detail() string      { return fmt.Sprintf("%d paths", len(s.Coefficients)) }

func (s MultipathChannel) validate() error {
	if len(s.Coefficients) == 0 {
		return errors.Wrap(dsp.ErrInvalidParameter, "multipath channel needs at least one path")
	}

	return nil
}

// CorrectorMode selects the corrector filter structure.
type CorrectorMode string

const (
	Recursive    CorrectorMode = "recursive"
	NonRecursive CorrectorMode = "nonrecursive"
)

// Corrector counteracts the inter-symbol interference of a multipath channel.
type Corrector struct {
	Mode CorrectorMode
	// Taps is the number of delayed replicas of a non-recursive corrector.
	Taps   int
	Gamma0 float64
	Gamma1 float64
}

// NewRecursiveCorrector returns a recursive corrector with coefficients gamma0 and gamma1.
func NewRecursiveCorrector(gamma0, gamma1 float64) (Corrector, error) {
	return validated(Corrector{Mode: Recursive, Gamma0: gamma0, Gamma1: gamma1})
}

// NewNonRecursiveCorrector returns a non-recursive corrector of taps replicas.
func NewNonRecursiveCorrector(taps int, gamma0, gamma1 float64) (Corrector, error) {
	return validated(Corrector{Mode: NonRecursive, Taps: taps, Gamma0: gamma0, Gamma1: gamma1})
}

func (Corrector) Kind() model.StageKind { return model.CorrectorKind }

func (s Corrector) Detail() string {
	if s.Mode == NonRecursive {
		return fmt.Sprintf("%s, %d taps", s.Mode, s.Taps)
	}

	return string(s.Mode)
}

func (s Corrector) validate() error {
	switch s.Mode {
	case Recursive:
		if s.Gamma0 == 0 {
			return errors.Wrap(dsp.ErrInvalidParameter, "recursive corrector needs a non-zero first coefficient")
		}
	case NonRecursive:
		if s.Gamma1 == 0 {
			return errors.Wrap(dsp.ErrInvalidParameter, "non-recursive corrector needs a non-zero second coefficient")
		}
		if s.Taps < 0 {
			return errors.Wrapf(dsp.ErrInvalidParameter, "tap count %d must not be negative", s.Taps)
		}
	default:
		return errors.Wrapf(dsp.ErrInvalidParameter, "unknown corrector mode %q", s.Mode)
	}

	return nil
}

// DelayResolver returns the delay, in symbols, an error counter compensates for. It is called right before
// the counter runs.
type DelayResolver func(ctx context.Context, rc RunContext) (int, error)

// ErrorCounter compares the signal with the reference captured after the bit source.
//
// The delay is taken from Delay when set, otherwise from Resolve, otherwise it is the delay accumulated by
// the stages that ran before the counter.
type ErrorCounter struct {
	Delay   *int
	Resolve DelayResolver
}

// NewErrorCounter returns an error counter whose delay is resolved when it runs.
func NewErrorCounter() ErrorCounter {
	return ErrorCounter{}
}

// NewFixedErrorCounter returns an error counter compensating for delay symbols.
func NewFixedErrorCounter(delay int) (ErrorCounter, error) {
	return validated(ErrorCounter{Delay: &delay})
}

func (ErrorCounter) Kind() model.StageKind { return model.ErrorCounterKind }

func (s ErrorCounter) Detail() string {
	if s.Delay != nil {
		return "delay=" + strconv.Itoa(*s.Delay)
	}

	return ""
}

func (s ErrorCounter) validate() error {
	if s.Delay != nil && *s.Delay < 0 {
		return errors.Wrapf(dsp.ErrInvalidParameter, "delay %d must not be negative", *s.Delay)
	}

	return nil
}

func validated[S Stage](stage S) (S, error) {
	err := stage.validate()
	if err != nil {
		var zero S
		return zero, err
	}

	return stage, nil
}

// symbolDelay is the delay, in symbols, a stage adds to the signal.
func symbolDelay(stage Stage) int {
	if _, ok := stage.(Demodulator); ok {
		return 1
	}

	return 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var (
	_ Stage = BitSource{}
	_ Stage = NoiseInjector{}
	_ Stage = Modulator{}
	_ Stage = Demodulator{}
	_ Stage = MultipathChannel{}
	_ Stage = Corrector{}
	_ Stage = ErrorCounter{}
)
