package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickBeforeIntervalDoesNotRefresh(t *testing.T) {
	p := NewProfiler()

	assert.False(t, p.Tick())
	assert.Zero(t, p.FPS())
}

func TestTickRefreshesAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.updateInterval = 10 * time.Millisecond

	for i := 0; i < 5; i++ {
		p.Tick()
	}
	time.Sleep(20 * time.Millisecond)

	require.True(t, p.Tick())
	assert.Greater(t, p.FPS(), 0.0)

	// The counter resets, so the next tick starts a fresh interval.
	assert.False(t, p.Tick())
}

func TestSummaryFormat(t *testing.T) {
	p := NewProfiler()
	p.fps = 60.5
	p.frameMs = 16.53

	assert.Equal(t, "60.5 FPS | 16.53 ms", p.Summary())
}
