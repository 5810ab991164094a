package profiler

import (
	"fmt"
	"runtime"
	"time"

	"github.com/umbra3d/umbra/engine/core"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	fps       float64
	frameMs   float64
	heapMB    float64
	allocRate float64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to half a second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: 500 * time.Millisecond,
	}
}

// FPS returns the frame rate measured over the last completed interval.
//
// Returns:
//   - float64: frames per second, 0 before the first interval elapses
func (p *Profiler) FPS() float64 {
	return p.fps
}

// Summary returns a short frame timing readout suitable for a window title.
//
// Returns:
//   - string: formatted FPS and frame time
func (p *Profiler) Summary() string {
	return fmt.Sprintf("%.1f FPS | %.2f ms", p.fps, p.frameMs)
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, frame time, heap usage, allocation rate, GC count.
//
// Returns:
//   - bool: true if stats were refreshed this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()
	if p.frameCount > 0 {
		p.frameMs = elapsed.Seconds() * 1000 / float64(p.frameCount)
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap; TotalAlloc is cumulative and tracks churn.
	p.heapMB = float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	p.allocRate = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
	}

	core.LogDebug("FPS: %.2f | Frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last pause: %d µs)",
		p.fps, p.frameMs, p.heapMB, p.allocRate, gcCount, lastPauseUs)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
