package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetric describes one completed simulation run.
type RunMetric struct {
	Workers  int
	Actions  int
	Trials   int
	Duration time.Duration
}

// Collector gathers throughput metrics for one simulation run. Workers
// report trial counts concurrently, so the counters are atomic.
type Collector interface {
	Start(workers, actions int)
	AddTrials(n int)
	Complete() RunMetric
}

type collector struct {
	workers   int
	actions   int
	startTime time.Time
	trials    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(workers, actions int) {
	c.startTime = time.Now()
	c.workers = workers
	c.actions = actions
	c.trials.Store(0)
}

func (c *collector) AddTrials(n int) {
	c.trials.Add(int64(n))
}

func (c *collector) Complete() RunMetric {
	return RunMetric{
		Workers:  c.workers,
		Actions:  c.actions,
		Trials:   int(c.trials.Load()),
		Duration: time.Since(c.startTime),
	}
}

// TrialsPerSecond is the run's aggregate throughput across all actions.
func (m RunMetric) TrialsPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Trials) / m.Duration.Seconds()
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for callers that do not
// measure throughput.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(workers, actions int) {}
func (dummyCollector) AddTrials(n int)            {}
func (dummyCollector) Complete() RunMetric        { return RunMetric{} }
