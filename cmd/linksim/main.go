// Command linksim runs point-to-point link simulations described by YAML scenario files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-linksim/internal/config"
	"github.com/askiada/go-linksim/internal/render"
	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline"
	"github.com/askiada/go-linksim/pkg/pipeline/drawer"
	"github.com/askiada/go-linksim/pkg/pipeline/logging"
	"github.com/askiada/go-linksim/pkg/pipeline/measure"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
	"github.com/askiada/go-linksim/pkg/pipeline/probe"
)

type runFlags struct {
	seed        uint64
	trials      int
	concurrency int
	drawFile    string
	measure     bool
	print       bool
	trace       bool
	delay       int
	verbose     bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linksim",
		Short:         "Simulate a point-to-point digital communication link",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newRunCmd(), newValidateCmd())

	return rootCmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate scenario.yaml",
		Short: "Check a scenario without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.LoadScenario(args[0])
			if err != nil {
				return err
			}
			grid, stages, err := scenario.Build()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d stages, %d samples, %d symbols of %d samples\n",
				len(stages), grid.SampleCount(), grid.SymbolCount(), grid.SymbolLength())

			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run scenario.yaml",
		Short: "Run a scenario",
		Long: `Run executes the stages of a scenario in order on one signal and prints the error counts.

With --trials, the scenario is run several times with seeds seed, seed+1, ... and the error
counts are aggregated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, cmd, args[0], flags)
		},
	}

	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed, overrides the scenario seed")
	cmd.Flags().IntVarP(&flags.trials, "trials", "n", 1, "number of independent runs")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 0, "maximum number of trials running together, 0 for no limit")
	cmd.Flags().StringVar(&flags.drawFile, "draw", "", "write the stage graph to this DOT file")
	cmd.Flags().BoolVar(&flags.measure, "measure", false, "print the average duration of every stage")
	cmd.Flags().BoolVarP(&flags.print, "print", "p", false, "print the final signal")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "print the signal produced by the bit source")
	cmd.Flags().IntVar(&flags.delay, "delay", 0, "delay, in symbols, of every error counter without an explicit delay")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every stage")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, fileName string, flags *runFlags) error {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	scenario, err := config.LoadScenario(fileName)
	if err != nil {
		return err
	}
	grid, stages, err := scenario.Build()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("delay") {
		stages, err = withDelay(grid, stages, flags.delay)
		if err != nil {
			return err
		}
	}

	seed := uint64(time.Now().UnixNano())
	switch {
	case cmd.Flags().Changed("seed"):
		seed = flags.seed
	case scenario.Seed != nil:
		seed = *scenario.Seed
	}
	logger.Debug("scenario loaded", slog.String("file", fileName), slog.Int("stages", len(stages)), slog.Uint64("seed", seed))

	var msr *measure.DefaultMeasure
	if flags.measure || flags.drawFile != "" {
		msr = measure.NewDefaultMeasure()
	}
	trace := probe.New(model.BitSourceKind)

	factory := func(trial int) (*pipeline.Pipeline, error) {
		opts := []model.PipelineOption{logging.PipelineLogger(logger.With(slog.Int("trial", trial)))}
		if msr != nil {
			opts = append(opts, measure.PipelineMeasure(msr))
		}
		if trial == 0 {
			if flags.trace {
				opts = append(opts, trace)
			}
			if flags.drawFile != "" {
				opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(flags.drawFile), msr))
			}
		}

		return pipeline.New(dsp.NewRand(seed+uint64(trial)), opts...)
	}

	out := cmd.OutOrStdout()
	if flags.trials > 1 {
		results, err := pipeline.RunTrials(ctx, grid, stages, flags.trials, flags.concurrency, factory)
		if err != nil {
			return err
		}
		err = printTrace(out, trace, flags.trace)
		if err != nil {
			return err
		}
		err = render.Summaries(out, pipeline.Summarize(results))
		if err != nil {
			return err
		}
	} else {
		pipe, err := factory(0)
		if err != nil {
			return err
		}
		res, err := pipe.Run(ctx, grid, stages)
		if err != nil {
			return err
		}
		err = printTrace(out, trace, flags.trace)
		if err != nil {
			return err
		}
		if flags.print {
			fmt.Fprintln(out, "Final signal:")
			err = render.Signal(out, res.Signal)
			if err != nil {
				return err
			}
		}
		err = render.Reports(out, res.Reports)
		if err != nil {
			return err
		}
	}

	if flags.measure {
		printMeasure(out, msr, stages)
	}

	return nil
}

// withDelay makes every error counter without an explicit delay use delay.
func withDelay(grid dsp.Grid, stages []pipeline.Stage, delay int) ([]pipeline.Stage, error) {
	if delay < 0 || delay > grid.SymbolCount() {
		return nil, errors.Wrapf(config.ErrOutOfRange, "delay %d, valid range is from 0 to %d", delay, grid.SymbolCount())
	}

	out := make([]pipeline.Stage, len(stages))
	for i, stage := range stages {
		counter, ok := stage.(pipeline.ErrorCounter)
		if ok && counter.Delay == nil {
			counter.Resolve = func(context.Context, pipeline.RunContext) (int, error) {
				return delay, nil
			}
			stage = counter
		}
		out[i] = stage
	}

	return out, nil
}

func printTrace(wrt io.Writer, trace *probe.Probe, enabled bool) error {
	if !enabled {
		return nil
	}
	for _, snapshot := range trace.Snapshots() {
		fmt.Fprintf(wrt, "Signal after %s:\n", snapshot.Stage.Name)
		err := render.Signal(wrt, snapshot.Signal)
		if err != nil {
			return err
		}
	}

	return nil
}

func printMeasure(wrt io.Writer, msr measure.Measure, stages []pipeline.Stage) {
	for i, stage := range stages {
		name := model.NewStageInfo(i, stage.Kind(), stage.Detail()).Name
		if mt := msr.GetMetric(name); mt != nil {
			fmt.Fprintf(wrt, "%s: avg %s, max %s\n", name, mt.AVGDuration(), mt.MaxDuration())
		}
	}
	if mt := msr.GetMetric(model.EndStage.Name); mt != nil {
		fmt.Fprintf(wrt, "total: %s\n", mt.AVGDuration())
	}
}
