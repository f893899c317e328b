package engine

import (
	"log"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

// DefaultMaxDeltaTime caps the delta time handed to callbacks so a stall (a window drag, a
// breakpoint) does not teleport the camera.
const DefaultMaxDeltaTime = 250 * time.Millisecond

// engine implements the Engine interface.
// Runs input dispatch, tick and render on the goroutine that owns the window.
type engine struct {
	running  bool
	quitOnce sync.Once

	window window.Window

	profiler *profiler.Profiler

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	maxDeltaTime     time.Duration
	lastFrame        time.Time
	frameCount       uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// Engine is the main entry point for the engine.
// It owns the frame loop: each window message loop iteration it measures the delta time, runs the
// tick callback, prepares and draws every active scene, then runs the render callback.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Profiler returns the frame profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler ticked once per frame
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ToggleProfiler flips profiling output and returns the new state.
	//
	// Returns:
	//   - bool: true if profiling is now enabled
	ToggleProfiler() bool

	// SetTickCallback registers the function called at the start of each frame.
	// Use this for input processing and camera updates.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called after each frame is presented.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are drawn in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining draw order (lower draws first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key, or nil.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// FrameCount returns the number of frames run so far.
	FrameCount() uint64

	// Run starts the frame loop. Blocks until the window closes or Quit is called.
	Run()

	// Quit asks the window to close, ending Run after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window is required; NewEngine panics without one. The window's resize events are forwarded to
// every scene and its renderer.
//
// Parameters:
//   - options: functional options for engine configuration (window, scenes, profiling, frame cap)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		scenes:       make(map[int]scene.Scene),
		profiler:     profiler.NewProfiler(profiler.WithEnabled(false)),
		maxDeltaTime: DefaultMaxDeltaTime,
		now:          time.Now,
		sleep:        time.Sleep,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: NewEngine requires a window (use WithWindow)")
	}
	e.window.SetResizeCallback(e.handleResize)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Run() {
	// Recover from panics inside the frame loop to log them instead of crashing the process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame loop recovered from panic: %v", r)
			e.Quit()
		}
	}()

	e.running = true
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.running = false
	log.Printf("[Engine] stopped after %d frames", e.frameCount)
}

// Quit asks the window to close. Uses sync.Once so the request is only sent once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running = false
		e.window.RequestClose()
	})
}

// frame runs one iteration of the loop: tick, prepare and draw active scenes, render callback,
// profiler, then the optional frame cap.
func (e *engine) frame() {
	start := e.now()
	elapsed := start.Sub(e.lastFrame)
	e.lastFrame = start
	if e.maxDeltaTime > 0 && elapsed > e.maxDeltaTime {
		elapsed = e.maxDeltaTime
	}
	dt := float32(elapsed.Seconds())

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	active := e.activeScenes()
	if len(active) > 0 {
		for _, s := range active {
			if err := s.Prepare(dt); err != nil {
				log.Printf("[Engine] scene %q prepare failed: %v", s.Name(), err)
			}
		}

		// The first active scene's renderer owns the frame; every scene draws into its single render pass.
		if frameRenderer := active[0].Renderer(); frameRenderer != nil {
			if err := frameRenderer.BeginFrame(); err == nil {
				for _, s := range active {
					if err := s.DrawCalls(); err != nil {
						log.Printf("[Engine] scene %q draw failed: %v", s.Name(), err)
					}
				}
				frameRenderer.EndFrame()
				frameRenderer.Present()
			}
		}
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	e.profiler.Tick()
	e.frameCount++

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

// activeScenes returns the active scenes in ascending z-index order.
func (e *engine) activeScenes() []scene.Scene {
	var active []scene.Scene
	for _, k := range slices.Sorted(maps.Keys(e.scenes)) {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

// handleResize forwards a framebuffer resize to each scene and, once, to each distinct renderer.
func (e *engine) handleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	resized := make(map[renderer.Renderer]bool)
	for _, s := range e.scenes {
		if r := s.Renderer(); r != nil && !resized[r] {
			r.Resize(width, height)
			resized[r] = true
		}
		s.Resize(width, height)
	}
}

func (e *engine) EnableProfiler() {
	e.profiler.SetEnabled(true)
}

func (e *engine) DisableProfiler() {
	e.profiler.SetEnabled(false)
}

func (e *engine) ToggleProfiler() bool {
	enabled := e.profiler.Toggle()
	log.Printf("[Engine] profiler enabled: %v", enabled)
	return enabled
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	return maps.Clone(e.scenes)
}

func (e *engine) FrameCount() uint64 {
	return e.frameCount
}

// frameDuration converts a frame rate to the minimum frame duration, 0 for uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
