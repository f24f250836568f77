// Package logging provides a pipeline option logging the progress of a run with log/slog.
package logging

import (
	"log/slog"
	"time"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

type pipelineLogger struct {
	logger *slog.Logger
	stages int
}

func (pl *pipelineLogger) New() error {
	return nil
}

func (pl *pipelineLogger) PrepareStage(parentStage, stage *model.StageInfo) error {
	pl.stages++
	pl.logger.Debug("stage prepared", slog.String("stage", stage.Name), slog.String("after", parentStage.Name))

	return nil
}

func (pl *pipelineLogger) OnStageOutput(stage *model.StageInfo, sig dsp.Signal, computationDuration time.Duration) error {
	pl.logger.Debug("stage done",
		slog.String("stage", stage.Name),
		slog.Int("samples", len(sig)),
		slog.Duration("elapsed", computationDuration),
	)

	return nil
}

func (pl *pipelineLogger) AfterRun(totalDuration time.Duration) error {
	pl.logger.Info("run finished", slog.Int("stages", pl.stages), slog.Duration("elapsed", totalDuration))
	pl.stages = 0

	return nil
}

func (pl *pipelineLogger) Finish() error {
	return nil
}

// PipelineLogger returns an option logging every stage at debug level and every run at info level.
// A nil logger uses slog.Default.
func PipelineLogger(logger *slog.Logger) model.PipelineOption {
	if logger == nil {
		logger = slog.Default()
	}

	return &pipelineLogger{logger: logger}
}
