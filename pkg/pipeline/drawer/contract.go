package drawer

import (
	"time"

	"github.com/askiada/go-linksim/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStage adds a stage to the pipeline drawer.
	AddStage(stageName string) error
	// AddLink adds a link between parent and children stages.
	AddLink(parentStageName, childrenStageName string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
	// SetTotalTime sets the total time for the stage.
	SetTotalTime(stageName string, startTime time.Time) error
	// AddMeasure adds a measure to the pipeline drawer.
	AddMeasure(measure measure.Measure) error
}
