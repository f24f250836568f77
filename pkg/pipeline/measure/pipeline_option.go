package measure

import (
	"time"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStage.Name)
	pm.AddMetric(model.EndStage.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStage(parentStage, stage *model.StageInfo) error {
	pm.AddMetric(stage.Name)

	return nil
}

func (pm *pipelineMeasure) OnStageOutput(stage *model.StageInfo, sig dsp.Signal, computationDuration time.Duration) error {
	pm.AddMetric(stage.Name).AddDuration(computationDuration)

	return nil
}

func (pm *pipelineMeasure) AfterRun(totalDuration time.Duration) error {
	end := pm.AddMetric(model.EndStage.Name)
	end.AddDuration(totalDuration)
	end.SetTotalDuration(totalDuration)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure returns an option recording the duration of every stage in measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
