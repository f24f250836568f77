package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/pkg/dsp"
)

func TestNewGrid(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		endTime, digitTimeSlot, sampleInterval float64
		expectedSamples, expectedSymbolLength  int
		expectedErr                            error
	}{
		"reference scenario":   {30, 1, 0.1, 300, 10, nil},
		"single sample":        {1, 1, 1, 1, 1, nil},
		"rounding noise":       {0.3, 0.1, 0.1, 3, 1, nil},
		"zero end time":        {0, 1, 0.1, 0, 0, dsp.ErrInvalidParameter},
		"negative slot":        {30, -1, 0.1, 0, 0, dsp.ErrInvalidParameter},
		"zero interval":        {30, 1, 0, 0, 0, dsp.ErrInvalidParameter},
		"end not multiple":     {30, 0.7, 0.1, 0, 0, dsp.ErrInvalidParameter},
		"slot not multiple":    {3, 1, 0.3, 0, 0, dsp.ErrInvalidParameter},
		"slot longer than end": {0.5, 1, 0.1, 0, 0, dsp.ErrInvalidParameter},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			grid, err := dsp.NewGrid(tc.endTime, tc.digitTimeSlot, tc.sampleInterval)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSamples, grid.SampleCount())
			assert.Equal(t, tc.expectedSymbolLength, grid.SymbolLength())
			assert.Equal(t, tc.expectedSamples/tc.expectedSymbolLength, grid.SymbolCount())
			assert.Len(t, grid.NewSignal(), tc.expectedSamples)
		})
	}
}

func TestGridAccessors(t *testing.T) {
	t.Parallel()

	grid, err := dsp.NewGrid(30, 1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, grid.EndTime())
	assert.Equal(t, 1.0, grid.DigitTimeSlot())
	assert.Equal(t, 0.1, grid.SampleInterval())
}
