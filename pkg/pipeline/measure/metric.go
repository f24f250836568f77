package measure

import (
	"sync"
	"time"
)

// DefaultMetric accumulates the durations of a stage. It is safe for concurrent use.
type DefaultMetric struct {
	mu      *sync.Mutex
	elapsed time.Duration
	slowest time.Duration
	runs    int64
	// total is only set on the end metric.
	total time.Duration
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.runs++
	mt.elapsed += elapsed
	mt.slowest = max(mt.slowest, elapsed)
}

// Total returns the number of recorded durations.
func (mt *DefaultMetric) Total() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.runs
}

func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total = endDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.runs == 0 {
		return 0
	}

	return round(mt.elapsed / time.Duration(mt.runs))
}

// MaxDuration returns the longest recorded duration.
func (mt *DefaultMetric) MaxDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return round(mt.slowest)
}

// round trims the precision of long durations.
func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		return d.Round(time.Minute)
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	}

	return d
}
