package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/internal/config"
	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline"
)

const fullScenario = `
grid:
  end_time: 30
  digit_time_slot: 1
  sample_interval: 0.1
seed: 42
stages:
  - bit_source: {probability: 0.5}
  - modulator: {type: am}
  - multipath: {coefficients: [1, 0.5]}
  - noise: {sigma: 0.1}
  - corrector: {mode: nonrecursive, taps: 3, coefficients: [1, 0.5]}
  - corrector: {mode: recursive, coefficients: [1, 0.5]}
  - demodulator: {type: am}
  - error_counter: {}
  - error_counter: {delay: 1}
`

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(fullScenario), 0o600))

	scenario, err := config.LoadScenario(fileName)
	require.NoError(t, err)
	require.NotNil(t, scenario.Seed)
	assert.Equal(t, uint64(42), *scenario.Seed)

	grid, stages, err := scenario.Build()
	require.NoError(t, err)
	assert.Equal(t, 300, grid.SampleCount())

	delay := 1
	assert.Equal(t, []pipeline.Stage{
		pipeline.BitSource{Probability: 0.5},
		pipeline.Modulator{Type: dsp.AM},
		pipeline.MultipathChannel{Coefficients: []float64{1, 0.5}},
		pipeline.NoiseInjector{Sigma: 0.1},
		pipeline.Corrector{Mode: pipeline.NonRecursive, Taps: 3, Gamma0: 1, Gamma1: 0.5},
		pipeline.Corrector{Mode: pipeline.Recursive, Gamma0: 1, Gamma1: 0.5},
		pipeline.Demodulator{Type: dsp.AM},
		pipeline.ErrorCounter{},
		pipeline.ErrorCounter{Delay: &delay},
	}, stages)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseScenarioUnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.ParseScenario([]byte("grid: {end: 3}\n"))
	assert.Error(t, err)
}

func TestScenarioBuildErrors(t *testing.T) {
	t.Parallel()

	const grid = "grid: {end_time: 30, digit_time_slot: 1, sample_interval: 0.1}\nstages:\n"
	tcs := map[string]struct {
		stages      string
		expectedErr error
	}{
		"probability":        {"  - bit_source: {probability: 1.5}\n", dsp.ErrInvalidParameter},
		"sigma":              {"  - noise: {sigma: 501}\n", config.ErrOutOfRange},
		"modulation":         {"  - modulator: {type: qam}\n", dsp.ErrInvalidModulationType},
		"low freq modulator": {"  - modulator: {type: pm-lowfreq}\n", dsp.ErrInvalidModulationType},
		"paths":              {"  - multipath: {coefficients: [1]}\n", config.ErrOutOfRange},
		"path mismatch":      {"  - multipath: {paths: 3, coefficients: [1, 2]}\n", dsp.ErrInvalidParameter},
		"coefficient":        {"  - multipath: {coefficients: [1, 16]}\n", config.ErrOutOfRange},
		"taps":               {"  - corrector: {mode: nonrecursive, taps: 41, coefficients: [1, 1]}\n", config.ErrOutOfRange},
		"corrector mode":     {"  - corrector: {mode: adaptive, coefficients: [1, 1]}\n", dsp.ErrInvalidParameter},
		"corrector coeffs":   {"  - corrector: {mode: recursive, coefficients: [1]}\n", dsp.ErrInvalidParameter},
		"zero gamma":         {"  - corrector: {mode: recursive, coefficients: [0, 1]}\n", dsp.ErrInvalidParameter},
		"delay":              {"  - error_counter: {delay: 31}\n", config.ErrOutOfRange},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			scenario, err := config.ParseScenario([]byte(grid + tc.stages))
			require.NoError(t, err)
			_, _, err = scenario.Build()
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestScenarioBuildStageShape(t *testing.T) {
	t.Parallel()

	scenario, err := config.ParseScenario([]byte(`
grid: {end_time: 30, digit_time_slot: 1, sample_interval: 0.1}
stages:
  - bit_source: {probability: 0.5}
    noise: {sigma: 1}
`))
	require.NoError(t, err)
	_, _, err = scenario.Build()
	assert.ErrorContains(t, err, "exactly one stage must be set, got 2")

	scenario, err = config.ParseScenario([]byte("grid: {end_time: 30, digit_time_slot: 0.7, sample_interval: 0.1}\n"))
	require.NoError(t, err)
	_, _, err = scenario.Build()
	assert.ErrorIs(t, err, dsp.ErrInvalidParameter)
}
