package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline"
)

func referenceGrid(t *testing.T) dsp.Grid {
	t.Helper()
	grid, err := dsp.NewGrid(30, 1, 0.1)
	require.NoError(t, err)

	return grid
}

func mustStage[S pipeline.Stage](stage S, err error) pipeline.Stage {
	if err != nil {
		panic(err)
	}

	return stage
}

func resultWithoutDuration(res *pipeline.Result) *pipeline.Result {
	res.Duration = 0
	return res
}
