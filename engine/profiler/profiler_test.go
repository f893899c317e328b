package profiler

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProfiler(clock *fakeClock, lines *[]string, opts ...ProfilerBuilderOption) *Profiler {
	base := []ProfilerBuilderOption{
		WithClock(clock.now),
		WithLogger(func(format string, args ...any) {
			*lines = append(*lines, fmt.Sprintf(format, args...))
		}),
	}
	p := NewProfiler(append(base, opts...)...)
	p.readMem = func(m *runtime.MemStats) {
		m.Alloc = 2 * 1024 * 1024
		m.Sys = 8 * 1024 * 1024
	}
	return p
}

func TestTickLogsAfterInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var lines []string
	p := newTestProfiler(clock, &lines)

	frames := []time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond}
	for i := 0; i < 20; i++ {
		clock.advance(frames[i%len(frames)])
		if p.Tick() && i != 19 {
			t.Fatalf("logged early at frame %d", i)
		}
	}
	clock.advance(600 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected stats after interval elapsed")
	}
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[Profiler] FPS:") {
		t.Fatalf("unexpected log output %q", lines)
	}

	s := p.Last()
	if s.Frames != 21 {
		t.Errorf("Frames = %d, want 21", s.Frames)
	}
	if s.MinFrameTime != 10*time.Millisecond {
		t.Errorf("MinFrameTime = %v", s.MinFrameTime)
	}
	if s.MaxFrameTime != 600*time.Millisecond {
		t.Errorf("MaxFrameTime = %v", s.MaxFrameTime)
	}
	if s.HeapMB != 2 || s.SysMB != 8 {
		t.Errorf("memory stats = %v / %v", s.HeapMB, s.SysMB)
	}
	wantFPS := 21 / 1.0
	if s.FPS != wantFPS {
		t.Errorf("FPS = %v, want %v", s.FPS, wantFPS)
	}
}

func TestIntervalResets(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var lines []string
	p := newTestProfiler(clock, &lines, WithInterval(100*time.Millisecond))

	clock.advance(100 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected first interval to log")
	}
	clock.advance(50 * time.Millisecond)
	if p.Tick() {
		t.Fatal("second interval logged too early")
	}
	clock.advance(50 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected second interval to log")
	}
	if got := p.Last().Frames; got != 2 {
		t.Errorf("Frames = %d, want 2", got)
	}
	if got := p.Last().MinFrameTime; got != 50*time.Millisecond {
		t.Errorf("MinFrameTime = %v", got)
	}
}

func TestDisabledProfilerIgnoresTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var lines []string
	p := newTestProfiler(clock, &lines, WithEnabled(false))

	clock.advance(5 * time.Second)
	if p.Tick() {
		t.Fatal("disabled profiler logged")
	}
	if !p.Toggle() {
		t.Fatal("Toggle should enable")
	}
	clock.advance(500 * time.Millisecond)
	if p.Tick() {
		t.Fatal("time spent disabled counted toward the interval")
	}
	if p.Toggle() {
		t.Fatal("Toggle should disable")
	}
	if len(lines) != 0 {
		t.Fatalf("unexpected output %q", lines)
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithInterval(-time.Second))
	if p.updateInterval != time.Second {
		t.Errorf("updateInterval = %v", p.updateInterval)
	}
}
