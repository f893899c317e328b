package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is a snapshot of one reporting interval.
type Stats struct {
	Frames       int
	FPS          float64
	MinFrameTime time.Duration
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration

	HeapMB      float64
	AllocRateMB float64
	SysMB       float64
	NumGC       uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
}

// Profiler tracks frame rate, frame time and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	enabled        bool
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	minFrame       time.Duration
	maxFrame       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now     func() time.Time
	logf    func(format string, args ...any)
	readMem func(*runtime.MemStats)
}

// NewProfiler creates a new enabled Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options overriding the interval, clock or log sink
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		enabled:        true,
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
		readMem:        runtime.ReadMemStats,
	}
	for _, opt := range options {
		opt(p)
	}
	p.reset(p.now())
	return p
}

// Enabled reports whether Tick records frames.
func (p *Profiler) Enabled() bool {
	return p.enabled
}

// SetEnabled turns the profiler on or off. Enabling starts a fresh interval so the pause is not
// counted as one long frame.
//
// Parameters:
//   - enabled: true to record and log frames
func (p *Profiler) SetEnabled(enabled bool) {
	if enabled && !p.enabled {
		p.reset(p.now())
	}
	p.enabled = enabled
}

// Toggle flips the enabled state and returns the new value.
func (p *Profiler) Toggle() bool {
	p.SetEnabled(!p.enabled)
	return p.enabled
}

// Last returns the stats logged by the most recent completed interval.
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, frame time min/avg/max, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	if !p.enabled {
		return false
	}

	currentTime := p.now()
	frame := currentTime.Sub(p.lastFrame)
	p.lastFrame = currentTime
	p.frameCount++
	if p.frameCount == 1 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	s := Stats{
		Frames:       p.frameCount,
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		MinFrameTime: p.minFrame,
		AvgFrameTime: elapsed / time.Duration(p.frameCount),
		MaxFrameTime: p.maxFrame,
	}

	p.readMem(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	s.SysMB = float64(p.memStats.Sys) / 1024 / 1024
	if p.memStats.TotalAlloc >= p.lastTotalAlloc {
		s.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
	}

	gcCount := p.memStats.NumGC
	s.NumGC = gcCount
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		s.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	p.logf("[Profiler] FPS: %.2f | Frame: %s min / %s avg / %s max | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, s.MinFrameTime, s.AvgFrameTime, s.MaxFrameTime, s.HeapMB, s.AllocRateMB, s.NumGC, s.LastPauseUs, s.MaxPauseUs, s.SysMB)

	p.last = s
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.reset(currentTime)
	return true
}

func (p *Profiler) reset(t time.Time) {
	p.frameCount = 0
	p.lastTime = t
	p.lastFrame = t
	p.minFrame = 0
	p.maxFrame = 0
}
