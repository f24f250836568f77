// Package probe provides a pipeline option keeping copies of intermediate signals.
package probe

import (
	"sync"
	"time"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

// Snapshot is the signal as it was right after a stage.
type Snapshot struct {
	Stage  *model.StageInfo
	Signal dsp.Signal
}

// Probe records a snapshot after every stage of the selected kinds.
type Probe struct {
	mu        sync.Mutex
	kinds     map[model.StageKind]struct{}
	snapshots []Snapshot
}

// New returns a probe recording the stages of the given kinds, or every stage when no kind is given.
func New(kinds ...model.StageKind) *Probe {
	p := &Probe{}
	if len(kinds) > 0 {
		p.kinds = make(map[model.StageKind]struct{}, len(kinds))
		for _, kind := range kinds {
			p.kinds[kind] = struct{}{}
		}
	}

	return p
}

// Snapshots returns the recorded snapshots in execution order.
func (p *Probe) Snapshots() []Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]Snapshot(nil), p.snapshots...)
}

func (p *Probe) New() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = nil

	return nil
}

func (p *Probe) PrepareStage(parentStage, stage *model.StageInfo) error {
	return nil
}

func (p *Probe) OnStageOutput(stage *model.StageInfo, sig dsp.Signal, computationDuration time.Duration) error {
	if p.kinds != nil {
		if _, ok := p.kinds[stage.Kind]; !ok {
			return nil
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, Snapshot{Stage: stage, Signal: sig.Clone()})

	return nil
}

func (p *Probe) AfterRun(totalDuration time.Duration) error {
	return nil
}

func (p *Probe) Finish() error {
	return nil
}

var _ model.PipelineOption = (*Probe)(nil)
