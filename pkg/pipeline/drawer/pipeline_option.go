package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/measure"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	last      *model.StageInfo
	startTime time.Time
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage to drawer")
	}
	err = pd.AddStage(model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end stage to drawer")
	}
	pd.startTime = time.Now()

	return nil
}

func (pd *pipelineDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name)
	if err != nil {
		return err
	}
	pd.last = stage

	return pd.AddLink(parentStage.Name, stage.Name)
}

func (pd *pipelineDrawer) OnStageOutput(stage *model.StageInfo, sig dsp.Signal, computationDuration time.Duration) error {
	return nil
}

// AfterRun links the last stage to the end of the graph.
func (pd *pipelineDrawer) AfterRun(totalDuration time.Duration) error {
	if pd.last == nil {
		return nil
	}

	return pd.AddLink(pd.last.Name, model.EndStage.Name)
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStage.Name, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer returns an option drawing the chain of stages when the run is finished.
// When measure is not nil, the stages are labelled and coloured with their durations.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
