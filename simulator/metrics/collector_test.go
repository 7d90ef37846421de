package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectorCountsAcrossGoroutines(t *testing.T) {
	c := NewCollector()
	c.Start(8, 7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddTrials(10)
			}
		}()
	}
	wg.Wait()

	m := c.Complete()
	require.Equal(t, 8000, m.Trials, "all workers' trials should be counted")
	require.Equal(t, 8, m.Workers)
	require.Equal(t, 7, m.Actions)
	require.Greater(t, m.Duration.Nanoseconds(), int64(0))
	require.Greater(t, m.TrialsPerSecond(), 0.0)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(4, 4)
	c.AddTrials(100)
	require.Equal(t, RunMetric{}, c.Complete(), "dummy collector should record nothing")
}
