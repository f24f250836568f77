package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
grid: {end_time: 30, digit_time_slot: 1, sample_interval: 0.1}
seed: 7
stages:
  - bit_source: {probability: 0.5}
  - modulator: {type: am}
  - demodulator: {type: am}
  - error_counter: {}
`

func writeScenario(t *testing.T) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(scenario), 0o600))

	return fileName
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestValidate(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "validate", writeScenario(t))
	require.NoError(t, err)
	assert.Equal(t, "4 stages, 300 samples, 30 symbols of 10 samples\n", out)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dotFile := filepath.Join(t.TempDir(), "link.dot")
	out, err := execute(t, "run", writeScenario(t), "--trace", "--print", "--measure", "--draw", dotFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Signal after 1: bit source (p=0.5):\ns[0] = ")
	assert.Contains(t, out, "Final signal:\n")
	assert.Contains(t, out, "4: error counter: number of errors: 0 (delay 1, 0/290 samples differ)\n")
	assert.Contains(t, out, "total: ")
	assert.Equal(t, 2*300/5, strings.Count(out, "\ns["))

	content, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"3: demodulator (am)" -> "4: error counter"`)
}

func TestRunDelayOverride(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "run", writeScenario(t), "--delay", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "4: error counter: number of errors: ")
	assert.Contains(t, out, "(delay 0, ")

	_, err = execute(t, "run", writeScenario(t), "--delay", "31")
	assert.Error(t, err)
}

func TestRunTrials(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "run", writeScenario(t), "--trials", "4", "--concurrency", "2")
	require.NoError(t, err)
	assert.Equal(t, "4: error counter: 4 trials, mean number of errors: 0.000, sample error rate: 0.00000\n", out)
}

func TestRunMissingScenario(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateSampleScenarios(t *testing.T) {
	t.Parallel()

	fileNames, err := filepath.Glob(filepath.Join("..", "..", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, fileNames)

	for _, fileName := range fileNames {
		fileName := fileName
		t.Run(filepath.Base(fileName), func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "validate", fileName)
			require.NoError(t, err)
			assert.Contains(t, out, "300 samples, 30 symbols of 10 samples")
		})
	}
}
