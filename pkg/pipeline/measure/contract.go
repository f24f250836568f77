package measure

import "time"

// Measure collects one metric per stage.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric collects the durations of one stage over one or more runs.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	MaxDuration() time.Duration
	Total() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
