package model

import (
	"time"

	"github.com/askiada/go-linksim/pkg/dsp"
)

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineStageOption

	// AfterRun runs once all the stages of a run are executed.
	AfterRun(totalDuration time.Duration) error
	// Finish runs after the pipeline is finished.
	Finish() error
}

// pipelineStageOption defines the interface for stage options at the pipeline level.
type pipelineStageOption interface {
	// PrepareStage runs for every stage before the first one is executed.
	PrepareStage(parentStage, stage *StageInfo) error
	// OnStageOutput runs every time a stage has transformed the signal.
	// The signal must not be retained or modified: it is the live buffer of the run.
	OnStageOutput(stage *StageInfo, sig dsp.Signal, computationDuration time.Duration) error
}
