package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/pkg/dsp"
)

func referenceGrid(t *testing.T) dsp.Grid {
	t.Helper()
	grid, err := dsp.NewGrid(30, 1, 0.1)
	require.NoError(t, err)

	return grid
}

func unitGrid(t *testing.T, samples int) dsp.Grid {
	t.Helper()
	grid, err := dsp.NewGrid(float64(samples), 1, 1)
	require.NoError(t, err)

	return grid
}

func randomBits(t *testing.T, grid dsp.Grid, seed uint64) dsp.Signal {
	t.Helper()
	sig := grid.NewSignal()
	require.NoError(t, dsp.GenerateBits(grid, sig, 0.5, dsp.NewRand(seed)))

	return sig
}
