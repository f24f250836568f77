package logging_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/logging"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

func TestPipelineLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opt := logging.PipelineLogger(logger)

	stage := model.NewStageInfo(0, model.BitSourceKind, "p=1")
	require.NoError(t, opt.New())
	require.NoError(t, opt.PrepareStage(model.StartStage, stage))
	require.NoError(t, opt.OnStageOutput(stage, make(dsp.Signal, 30), time.Millisecond))
	require.NoError(t, opt.AfterRun(2*time.Millisecond))
	require.NoError(t, opt.Finish())

	out := buf.String()
	assert.Contains(t, out, `msg="stage prepared" stage="1: bit source (p=1)" after=start`)
	assert.Contains(t, out, "samples=30 elapsed=1ms")
	assert.Contains(t, out, `msg="run finished" stages=1 elapsed=2ms`)
}
