package model

import "fmt"

// StageKind names a stage variant.
type StageKind string

const (
	BitSourceKind        StageKind = "bit source"
	NoiseInjectorKind    StageKind = "noise injector"
	ModulatorKind        StageKind = "modulator"
	DemodulatorKind      StageKind = "demodulator"
	MultipathChannelKind StageKind = "multipath channel"
	CorrectorKind        StageKind = "corrector"
	ErrorCounterKind     StageKind = "error counter"
)

// StageInfo describes a stage at a given position in a pipeline.
type StageInfo struct {
	Kind StageKind
	// Name is unique within a pipeline.
	Name  string
	Index int
}

// NewStageInfo returns the description of the stage at index.
func NewStageInfo(index int, kind StageKind, detail string) *StageInfo {
	name := fmt.Sprintf("%d: %s", index+1, kind)
	if detail != "" {
		name += " (" + detail + ")"
	}

	return &StageInfo{Kind: kind, Name: name, Index: index}
}

var (
	StartStage = &StageInfo{Name: "start", Index: -1}
	EndStage   = &StageInfo{Name: "end", Index: -1}
)
