package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

// Pipeline runs a link simulation stage after stage on one shared signal.
type Pipeline struct {
	rng  dsp.Rand
	opts []model.PipelineOption
}

// New creates a new pipeline drawing its randomness from rng.
// A nil rng is replaced by a generator seeded from the clock.
func New(rng dsp.Rand, opts ...model.PipelineOption) (*Pipeline, error) {
	if rng == nil {
		rng = dsp.NewRand(uint64(time.Now().UnixNano()))
	}
	pipe := &Pipeline{
		rng:  rng,
		opts: opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// Run validates the stages then executes them in order on a signal sized for grid.
func (p *Pipeline) Run(ctx context.Context, grid dsp.Grid, stages []Stage) (*Result, error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	infos, err := p.prepare(grid, stages)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	sig := grid.NewSignal()
	rc := RunContext{Grid: grid}
	res := &Result{}

	for i, stage := range stages {
		err := ctx.Err()
		if err != nil {
			return nil, errors.Wrapf(err, "stage %s", infos[i].Name)
		}

		rc.Stage = infos[i]
		startFn := time.Now()
		report, err := p.runStage(ctx, grid, sig, stage, rc)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %s", infos[i].Name)
		}
		endFn := time.Since(startFn)

		if report != nil {
			res.Reports = append(res.Reports, *report)
		}
		if stage.Kind() == model.BitSourceKind {
			rc.Reference = sig.Clone()
		}
		rc.AccumulatedDelay += symbolDelay(stage)

		for _, opt := range p.opts {
			err := opt.OnStageOutput(infos[i], sig, endFn)
			if err != nil {
				return nil, errors.Wrap(err, "unable to run on stage output function")
			}
		}
	}

	res.Signal = sig
	res.Reference = rc.Reference

	res.Duration = time.Since(startTime)

	err = p.finishRun(res.Duration)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// prepare checks every stage before any of them runs and announces them to the options.
func (p *Pipeline) prepare(grid dsp.Grid, stages []Stage) ([]*model.StageInfo, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	infos := make([]*model.StageInfo, len(stages))
	hasReference := false
	for i, stage := range stages {
		if stage == nil {
			return nil, errors.Wrapf(ErrUnknownStage, "stage %d is nil", i+1)
		}
		infos[i] = model.NewStageInfo(i, stage.Kind(), stage.Detail())

		err := stage.validate()
		if err != nil {
			return nil, errors.Wrapf(err, "stage %s", infos[i].Name)
		}

		switch s := stage.(type) {
		case BitSource:
			hasReference = true
		case ErrorCounter:
			if !hasReference {
				return nil, errors.Wrapf(ErrNoReference, "stage %s", infos[i].Name)
			}
			if s.Delay != nil && *s.Delay > grid.SymbolCount() {
				return nil, errors.Wrapf(dsp.ErrIndexOutOfRange, "stage %s: delay of %d symbols exceeds the %d symbols of the signal",
					infos[i].Name, *s.Delay, grid.SymbolCount())
			}
		}
	}

	parent := model.StartStage
	for _, info := range infos {
		for _, opt := range p.opts {
			err := opt.PrepareStage(parent, info)
			if err != nil {
				return nil, errors.Wrap(err, "unable to run prepare stage function")
			}
		}
		parent = info
	}

	return infos, nil
}

// runStage dispatches stage to its algorithm. Only error counters return a report.
func (p *Pipeline) runStage(ctx context.Context, grid dsp.Grid, sig dsp.Signal, stage Stage, rc RunContext) (*ErrorReport, error) {
	switch s := stage.(type) {
	case BitSource:
		return nil, dsp.GenerateBits(grid, sig, s.Probability, p.rng)
	case NoiseInjector:
		return nil, dsp.AddNoise(sig, s.Sigma, p.rng)
	case Modulator:
		return nil, dsp.Modulate(grid, sig, s.Type)
	case Demodulator:
		return nil, dsp.Demodulate(grid, sig, s.Type)
	case MultipathChannel:
		return nil, dsp.Multipath(grid, sig, s.Coefficients)
	case Corrector:
		if s.Mode == Recursive {
			return nil, dsp.CorrectRecursive(grid, sig, s.Gamma0, s.Gamma1)
		}
		return nil, dsp.CorrectNonRecursive(grid, sig, s.Taps, s.Gamma0, s.Gamma1)
	case ErrorCounter:
		return countErrors(ctx, grid, sig, s, rc)
	}

	return nil, errors.Wrapf(ErrUnknownStage, "%T", stage)
}

func countErrors(ctx context.Context, grid dsp.Grid, sig dsp.Signal, stage ErrorCounter, rc RunContext) (*ErrorReport, error) {
	if rc.Reference == nil {
		return nil, ErrNoReference
	}

	delay := rc.AccumulatedDelay
	switch {
	case stage.Delay != nil:
		delay = *stage.Delay
	case stage.Resolve != nil:
		var err error
		delay, err = stage.Resolve(ctx, rc)
		if err != nil {
			return nil, errors.Wrap(err, "unable to resolve delay")
		}
	}

	count, err := dsp.CountErrors(grid, sig, rc.Reference, delay)
	if err != nil {
		return nil, err
	}

	return &ErrorReport{Stage: rc.Stage, Delay: delay, ErrorCount: count}, nil
}

func (p *Pipeline) finishRun(totalDuration time.Duration) error {
	for _, opt := range p.opts {
		err := opt.AfterRun(totalDuration)
		if err != nil {
			return errors.Wrap(err, "unable to run after run function")
		}
	}

	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
