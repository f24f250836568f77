package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/pkg/dsp"
)

func TestAddNoiseZeroSigma(t *testing.T) {
	t.Parallel()

	grid := referenceGrid(t)
	sig := randomBits(t, grid, 3)
	before := sig.Clone()

	require.NoError(t, dsp.AddNoise(sig, 0, nil))
	assert.Equal(t, before, sig)
}

func TestAddNoiseStatistics(t *testing.T) {
	t.Parallel()

	sig := make(dsp.Signal, 100000)
	require.NoError(t, dsp.AddNoise(sig, 2, dsp.NewRand(9)))

	var sum, sumSq float64
	for _, v := range sig {
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(sig))
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 4, sumSq/float64(len(sig))-mean*mean, 0.1)
}

func TestAddNoiseReproducible(t *testing.T) {
	t.Parallel()

	a := make(dsp.Signal, 50)
	b := make(dsp.Signal, 50)
	require.NoError(t, dsp.AddNoise(a, 0.5, dsp.NewRand(11)))
	require.NoError(t, dsp.AddNoise(b, 0.5, dsp.NewRand(11)))
	assert.Equal(t, a, b)
}

func TestAddNoiseNegativeSigma(t *testing.T) {
	t.Parallel()

	err := dsp.AddNoise(make(dsp.Signal, 5), -1, dsp.NewRand(1))
	assert.ErrorIs(t, err, dsp.ErrInvalidParameter)
}
