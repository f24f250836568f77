package measure

import (
	"sync"
)

// DefaultMeasure is a Measure safe for concurrent use. It can be shared by the pipelines of several trials.
type DefaultMeasure struct {
	mu      sync.Mutex
	metrics map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		metrics: make(map[string]Metric),
	}
}

// AddMetric returns the metric of name, creating it if needed.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.metrics[name]; ok {
		return mt
	}
	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.metrics[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.metrics[name]
}

// AllMetrics returns a copy of the metrics by stage name.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]Metric, len(m.metrics))
	for name, mt := range m.metrics {
		all[name] = mt
	}

	return all
}

var _ Measure = (*DefaultMeasure)(nil)
