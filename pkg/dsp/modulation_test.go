package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/pkg/dsp"
)

// assertShifted checks that every window of got equals the previous window of ref.
func assertShifted(t *testing.T, grid dsp.Grid, ref, got dsp.Signal) {
	t.Helper()
	length := grid.SymbolLength()
	for k := 1; k < grid.SymbolCount(); k++ {
		assert.Equal(t, ref.Window(k-1, length), got.Window(k, length), "window %d", k)
	}
}

func TestModulateDemodulateRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []dsp.Modulation{dsp.AM, dsp.PM, dsp.FM} {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			t.Parallel()

			grid := referenceGrid(t)
			sig := randomBits(t, grid, 21)
			ref := sig.Clone()

			require.NoError(t, dsp.Modulate(grid, sig, m))
			assert.NotEqual(t, ref, sig)
			require.NoError(t, dsp.Demodulate(grid, sig, m))
			assertShifted(t, grid, ref, sig)
		})
	}
}

func TestDemodulateLowFrequency(t *testing.T) {
	t.Parallel()

	grid := referenceGrid(t)
	sig := randomBits(t, grid, 5)
	ref := sig.Clone()

	require.NoError(t, dsp.Demodulate(grid, sig, dsp.LowFreqPM))
	assertShifted(t, grid, ref, sig)
	assert.Equal(t, ref.Window(0, grid.SymbolLength()), sig.Window(0, grid.SymbolLength()))
}

func TestModulateAM(t *testing.T) {
	t.Parallel()

	grid := referenceGrid(t)
	sig := grid.NewSignal()
	require.NoError(t, dsp.GenerateBits(grid, sig, 0, nil))
	require.NoError(t, dsp.Modulate(grid, sig, dsp.AM))
	for _, v := range sig {
		assert.Zero(t, v)
	}
}

func TestModulationTypeErrors(t *testing.T) {
	t.Parallel()

	grid := referenceGrid(t)
	assert.ErrorIs(t, dsp.Modulate(grid, grid.NewSignal(), dsp.LowFreqPM), dsp.ErrInvalidModulationType)
	assert.ErrorIs(t, dsp.Modulate(grid, grid.NewSignal(), "qam"), dsp.ErrInvalidModulationType)
	assert.ErrorIs(t, dsp.Demodulate(grid, grid.NewSignal(), "qam"), dsp.ErrInvalidModulationType)
	assert.ErrorIs(t, dsp.Demodulate(grid, make(dsp.Signal, 3), dsp.AM), dsp.ErrIndexOutOfRange)
}

func TestParseModulation(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"am", "fm", "pm", "pm-lowfreq"} {
		m, err := dsp.ParseModulation(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
	_, err := dsp.ParseModulation("AM")
	assert.ErrorIs(t, err, dsp.ErrInvalidModulationType)
}
