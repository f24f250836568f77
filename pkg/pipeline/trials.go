package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

// PipelineFactory builds the pipeline used by a trial. Each trial must get its own generator.
type PipelineFactory func(trial int) (*Pipeline, error)

// RunTrials runs total independent simulations of the same stages, at most concurrent at a time.
// A concurrent value lower than 1 does not limit the number of trials running together.
// The first failing trial cancels the others.
func RunTrials(ctx context.Context, grid dsp.Grid, stages []Stage, total, concurrent int, factory PipelineFactory) ([]*Result, error) {
	if total <= 0 {
		return nil, ErrTrialsTotal
	}
	if factory == nil {
		return nil, ErrPipelineMustBeSet
	}

	results := make([]*Result, total)
	errGrp, dCtx := errgroup.WithContext(ctx)
	if concurrent > 0 {
		errGrp.SetLimit(concurrent)
	}
	for trial := 0; trial < total; trial++ {
		localTrial := trial
		errGrp.Go(func() error {
			pipe, err := factory(localTrial)
			if err != nil {
				return errors.Wrapf(err, "trial %d: unable to create pipeline", localTrial)
			}
			res, err := pipe.Run(dCtx, grid, stages)
			if err != nil {
				return errors.Wrapf(err, "trial %d", localTrial)
			}
			results[localTrial] = res

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ErrorSummary aggregates the reports of one error counter over several trials.
type ErrorSummary struct {
	Stage      *model.StageInfo
	Trials     int
	Mismatches int
	Compared   int
	Errors     int
}

// Rate returns the fraction of compared samples that differ over all trials.
func (s ErrorSummary) Rate() float64 {
	if s.Compared == 0 {
		return 0
	}

	return float64(s.Mismatches) / float64(s.Compared)
}

// MeanErrors returns the average number of symbol errors per trial.
func (s ErrorSummary) MeanErrors() float64 {
	if s.Trials == 0 {
		return 0
	}

	return float64(s.Errors) / float64(s.Trials)
}

// Summarize aggregates the reports of results counter by counter.
func Summarize(results []*Result) []ErrorSummary {
	var summaries []ErrorSummary
	for _, res := range results {
		if res == nil {
			continue
		}
		for i, report := range res.Reports {
			if i == len(summaries) {
				summaries = append(summaries, ErrorSummary{Stage: report.Stage})
			}
			summary := &summaries[i]
			summary.Trials++
			summary.Mismatches += report.Mismatches
			summary.Compared += report.Compared
			summary.Errors += report.Errors
		}
	}

	return summaries
}
