package pipeline

import (
	"time"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

// RunContext is the state of a run that an error counter depends on.
type RunContext struct {
	Grid dsp.Grid
	// Stage is the stage being executed.
	Stage *model.StageInfo
	// Reference is the signal captured right after the last bit source. It must not be modified.
	Reference dsp.Signal
	// AccumulatedDelay is the delay, in symbols, introduced by the stages executed so far.
	AccumulatedDelay int
}

// ErrorReport is the outcome of one error counter.
type ErrorReport struct {
	Stage *model.StageInfo
	// Delay is the delay, in symbols, the counter compensated for.
	Delay int
	dsp.ErrorCount
}

// Result is the outcome of a run.
type Result struct {
	Signal    dsp.Signal
	Reference dsp.Signal
	// Reports holds one report per error counter, in pipeline order.
	Reports  []ErrorReport
	Duration time.Duration
}
