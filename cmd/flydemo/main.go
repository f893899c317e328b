// Command flydemo flies a free camera through a field of rotating cubes.
//
// Controls: W/A/S/D move, the mouse turns (or drags with the left button when -drag is set),
// the wheel zooms, Space toggles cursor capture, C toggles frustum culling, R resets held input,
// P toggles the profiler and Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

// titleInterval is how often the window title is refreshed with camera state.
const titleInterval = 500 * time.Millisecond

// config holds the command line options.
type config struct {
	width       int
	height      int
	fps         float64
	vsync       bool
	msaa        bool
	speed       float64
	sensitivity float64
	near        float64
	far         float64
	drag        bool
	invertY     bool
	cubes       int
	radius      float64
	seed        int64
	spin        float64
	noCull      bool
	profile     bool
}

// parseFlags reads the command line into a config and validates it.
func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("flydemo", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 1280, "window width in pixels")
	fs.IntVar(&cfg.height, "height", 720, "window height in pixels")
	fs.Float64Var(&cfg.fps, "fps", 0, "frame rate cap, 0 for uncapped")
	fs.BoolVar(&cfg.vsync, "vsync", true, "wait for vertical blank when presenting")
	fs.BoolVar(&cfg.msaa, "msaa", true, "enable 4x multisample anti-aliasing")
	fs.Float64Var(&cfg.speed, "speed", float64(camera.DefaultMovementSpeed), "movement speed in units per second")
	fs.Float64Var(&cfg.sensitivity, "sensitivity", float64(camera.DefaultMouseSensitivity), "mouse sensitivity")
	fs.Float64Var(&cfg.near, "near", scene.DefaultNear, "near clip plane")
	fs.Float64Var(&cfg.far, "far", scene.DefaultFar, "far clip plane")
	fs.BoolVar(&cfg.drag, "drag", false, "turn only while the left mouse button is held")
	fs.BoolVar(&cfg.invertY, "invert-y", false, "invert vertical mouse look")
	fs.IntVar(&cfg.cubes, "cubes", 0, "extra randomly placed cubes")
	fs.Float64Var(&cfg.radius, "radius", 40, "radius of the random cube field")
	fs.Int64Var(&cfg.seed, "seed", 1, "random cube field seed")
	fs.Float64Var(&cfg.spin, "spin", 20, "spin of every third default cube in degrees per second")
	fs.BoolVar(&cfg.noCull, "no-cull", false, "disable frustum culling")
	fs.BoolVar(&cfg.profile, "profile", false, "log frame and memory stats every second")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.width <= 0 || cfg.height <= 0:
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.width, cfg.height)
	case cfg.near <= 0 || cfg.far <= cfg.near:
		return cfg, fmt.Errorf("invalid clip planes near=%v far=%v", cfg.near, cfg.far)
	case cfg.cubes < 0:
		return cfg, fmt.Errorf("invalid cube count %d", cfg.cubes)
	case cfg.fps < 0:
		return cfg, fmt.Errorf("invalid fps cap %v", cfg.fps)
	}
	return cfg, nil
}

// controllerOptions maps the config to camera controller options.
func controllerOptions(cfg config) []camera.CameraControllerOption {
	opts := []camera.CameraControllerOption{
		camera.WithKeyBinding(common.KeyUp, camera.MovementForward),
		camera.WithKeyBinding(common.KeyDown, camera.MovementBackward),
		camera.WithKeyBinding(common.KeyLeft, camera.MovementLeft),
		camera.WithKeyBinding(common.KeyRight, camera.MovementRight),
		camera.WithInvertY(cfg.invertY),
	}
	if cfg.drag {
		opts = append(opts, camera.WithLookButton(common.MouseButtonLeft))
	}
	return opts
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[Flydemo] %v", err)
	}

	// ── Window + Engine ─────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("oxy-flycam"),
		window.WithWidth(cfg.width),
		window.WithHeight(cfg.height),
		window.WithCursorCaptured(!cfg.drag),
	)
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithEnabled(cfg.profile))),
		engine.WithRenderFrameLimit(cfg.fps),
	)

	// ── Renderer ────────────────────────────────────────────────────
	presentMode := renderer.PresentModeVSync
	if !cfg.vsync {
		presentMode = renderer.PresentModeUncapped
	}
	msaa := renderer.MSAA4x
	if !cfg.msaa {
		msaa = renderer.MSAAOff
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
	)
	defer r.Release()

	// ── Camera ──────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithPosition(common.Vec3{0, 0, 3}),
		camera.WithMovementSpeed(float32(cfg.speed)),
		camera.WithMouseSensitivity(float32(cfg.sensitivity)),
		camera.WithClipSpace(common.ClipSpaceZO),
	)
	ctrl := camera.NewCameraController(cam, controllerOptions(cfg)...)

	// ── Scene ───────────────────────────────────────────────────────
	sc, err := scene.NewScene("flycam", cam, r,
		scene.WithSpin(float32(cfg.spin)),
		scene.WithRandomCubes(cfg.cubes, float32(cfg.radius), cfg.seed),
		scene.WithClipPlanes(float32(cfg.near), float32(cfg.far)),
		scene.WithViewportSize(win.Width(), win.Height()),
		scene.WithCullingDisabled(cfg.noCull),
	)
	if err != nil {
		log.Fatalf("[Flydemo] %v", err)
	}
	defer sc.Release()
	eng.AddScene(0, sc)

	// ── Input ───────────────────────────────────────────────────────
	setupInput(eng, ctrl, sc, !cfg.drag)

	// ── Per-frame ───────────────────────────────────────────────────
	eng.SetTickCallback(ctrl.Update)

	var sinceTitle time.Duration
	eng.SetRenderCallback(func(deltaTime float32) {
		sinceTitle += time.Duration(float64(deltaTime) * float64(time.Second))
		if sinceTitle < titleInterval {
			return
		}
		sinceTitle = 0
		win.SetTitle(fmt.Sprintf("oxy-flycam | %s | yaw %.0f pitch %.0f fov %.0f | %d/%d cubes",
			cam.Position(), cam.Yaw(), cam.Pitch(), cam.Zoom(), sc.VisibleCount(), sc.Count()))
	})

	log.Printf("[Flydemo] %d cubes, speed %.1f, sensitivity %.2f, drag-to-look %v", sc.Count(), cfg.speed, cfg.sensitivity, cfg.drag)
	eng.Run()
}

// setupInput forwards window input to the camera controller and binds the toggle keys.
func setupInput(eng engine.Engine, ctrl camera.CameraController, sc scene.Scene, captured bool) {
	win := eng.Window()

	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyP:
			eng.ToggleProfiler()
		case common.KeySpace:
			captured = !captured
			win.SetCursorCaptured(captured)
			// The cursor jumps when capture changes, so the next sample must not turn the camera.
			ctrl.Reset()
		case common.KeyC:
			sc.SetCullingDisabled(!sc.CullingDisabled())
			log.Printf("[Flydemo] frustum culling disabled: %v", sc.CullingDisabled())
		case common.KeyR:
			ctrl.Reset()
		default:
			ctrl.KeyDown(keyCode)
		}
	})
	win.SetKeyUpCallback(ctrl.KeyUp)
	win.SetMouseButtonCallback(ctrl.MouseButton)
	win.SetMouseMoveCallback(ctrl.MouseMove)
	win.SetScrollCallback(ctrl.Scroll)
}
