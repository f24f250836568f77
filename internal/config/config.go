// Package config loads simulation scenarios from YAML files.
//
// The loader applies the parameter ranges of the interactive prompts the simulator was first driven with,
// then builds the grid and the stages with the validating constructors of the pipeline package.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline"
)

// ErrOutOfRange is returned when a scenario value is outside its accepted range.
var ErrOutOfRange = errors.New("value out of range")

// Accepted ranges.
const (
	MaxSigma       = 500.
	MinPaths       = 2
	MaxPaths       = 3
	MaxCoefficient = 15.
	MinTaps        = 1
	MaxTaps        = 40
)

type Scenario struct {
	Grid struct {
		EndTime        float64 `yaml:"end_time"`
		DigitTimeSlot  float64 `yaml:"digit_time_slot"`
		SampleInterval float64 `yaml:"sample_interval"`
	} `yaml:"grid"`

	// Seed makes the run reproducible. A missing seed is taken from the clock.
	Seed *uint64 `yaml:"seed"`

	Stages []StageConfig `yaml:"stages"`
}

// StageConfig holds exactly one stage.
type StageConfig struct {
	BitSource *struct {
		Probability float64 `yaml:"probability"`
	} `yaml:"bit_source"`

	Noise *struct {
		Sigma float64 `yaml:"sigma"`
	} `yaml:"noise"`

	Modulator   *ModulationConfig `yaml:"modulator"`
	Demodulator *ModulationConfig `yaml:"demodulator"`

	Multipath *struct {
		// Paths defaults to the number of coefficients.
		Paths        int       `yaml:"paths"`
		Coefficients []float64 `yaml:"coefficients"`
	} `yaml:"multipath"`

	Corrector *struct {
		Mode         string    `yaml:"mode"`
		Taps         int       `yaml:"taps"`
		Coefficients []float64 `yaml:"coefficients"`
	} `yaml:"corrector"`

	ErrorCounter *struct {
		Delay *int `yaml:"delay"`
	} `yaml:"error_counter"`
}

type ModulationConfig struct {
	Type string `yaml:"type"`
}

// LoadScenario reads and decodes the scenario file at filename.
func LoadScenario(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read scenario %s", filename)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", filename)
	}

	return scenario, nil
}

// ParseScenario decodes a YAML scenario. Unknown fields are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&scenario)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode scenario")
	}

	return &scenario, nil
}

// Build validates the scenario and returns its grid and stages.
func (s *Scenario) Build() (dsp.Grid, []pipeline.Stage, error) {
	grid, err := dsp.NewGrid(s.Grid.EndTime, s.Grid.DigitTimeSlot, s.Grid.SampleInterval)
	if err != nil {
		return dsp.Grid{}, nil, errors.Wrap(err, "grid")
	}

	stages := make([]pipeline.Stage, 0, len(s.Stages))
	for i, cfg := range s.Stages {
		stage, err := cfg.build(grid)
		if err != nil {
			return dsp.Grid{}, nil, errors.Wrapf(err, "stage %d", i+1)
		}
		stages = append(stages, stage)
	}

	return grid, stages, nil
}

func (c StageConfig) build(grid dsp.Grid) (pipeline.Stage, error) {
	set := 0
	for _, present := range []bool{
		c.BitSource != nil, c.Noise != nil, c.Modulator != nil, c.Demodulator != nil,
		c.Multipath != nil, c.Corrector != nil, c.ErrorCounter != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Errorf("exactly one stage must be set, got %d", set)
	}

	switch {
	case c.BitSource != nil:
		return pipeline.NewBitSource(c.BitSource.Probability)
	case c.Noise != nil:
		err := inRange("sigma", c.Noise.Sigma, 0, MaxSigma)
		if err != nil {
			return nil, err
		}
		return pipeline.NewNoiseInjector(c.Noise.Sigma)
	case c.Modulator != nil:
		m, err := dsp.ParseModulation(c.Modulator.Type)
		if err != nil {
			return nil, err
		}
		return pipeline.NewModulator(m)
	case c.Demodulator != nil:
		m, err := dsp.ParseModulation(c.Demodulator.Type)
		if err != nil {
			return nil, err
		}
		return pipeline.NewDemodulator(m)
	case c.Multipath != nil:
		return c.buildMultipath()
	case c.Corrector != nil:
		return c.buildCorrector()
	default:
		return c.buildErrorCounter(grid)
	}
}

func (c StageConfig) buildMultipath() (pipeline.Stage, error) {
	paths := c.Multipath.Paths
	if paths == 0 {
		paths = len(c.Multipath.Coefficients)
	}
	err := inRange("number of paths", float64(paths), MinPaths, MaxPaths)
	if err != nil {
		return nil, err
	}
	err = coefficientsInRange(c.Multipath.Coefficients)
	if err != nil {
		return nil, err
	}

	return pipeline.NewMultipathChannel(paths, c.Multipath.Coefficients)
}

func (c StageConfig) buildCorrector() (pipeline.Stage, error) {
	cfg := c.Corrector
	if len(cfg.Coefficients) != 2 {
		return nil, errors.Wrapf(dsp.ErrInvalidParameter, "corrector needs 2 coefficients, got %d", len(cfg.Coefficients))
	}
	err := coefficientsInRange(cfg.Coefficients)
	if err != nil {
		return nil, err
	}

	switch pipeline.CorrectorMode(cfg.Mode) {
	case pipeline.Recursive:
		return pipeline.NewRecursiveCorrector(cfg.Coefficients[0], cfg.Coefficients[1])
	case pipeline.NonRecursive:
		err := inRange("number of taps", float64(cfg.Taps), MinTaps, MaxTaps)
		if err != nil {
			return nil, err
		}
		return pipeline.NewNonRecursiveCorrector(cfg.Taps, cfg.Coefficients[0], cfg.Coefficients[1])
	}

	return nil, errors.Wrapf(dsp.ErrInvalidParameter, "unknown corrector mode %q", cfg.Mode)
}

func (c StageConfig) buildErrorCounter(grid dsp.Grid) (pipeline.Stage, error) {
	if c.ErrorCounter.Delay == nil {
		return pipeline.NewErrorCounter(), nil
	}
	err := inRange("delay", float64(*c.ErrorCounter.Delay), 0, float64(grid.SymbolCount()))
	if err != nil {
		return nil, err
	}

	return pipeline.NewFixedErrorCounter(*c.ErrorCounter.Delay)
}

func coefficientsInRange(coeffs []float64) error {
	for i, coeff := range coeffs {
		err := inRange(fmt.Sprintf("coefficient %d", i+1), coeff, -MaxCoefficient, MaxCoefficient)
		if err != nil {
			return err
		}
	}

	return nil
}

func inRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return errors.Wrapf(ErrOutOfRange, "%s %v, valid range is from %v to %v", name, v, lo, hi)
	}

	return nil
}
