package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.width != 1280 || cfg.height != 720 {
		t.Errorf("size = %dx%d", cfg.width, cfg.height)
	}
	if cfg.speed != float64(camera.DefaultMovementSpeed) || cfg.sensitivity != float64(camera.DefaultMouseSensitivity) {
		t.Errorf("speed/sensitivity = %v/%v", cfg.speed, cfg.sensitivity)
	}
	if cfg.near != scene.DefaultNear || cfg.far != scene.DefaultFar {
		t.Errorf("clip planes = %v/%v", cfg.near, cfg.far)
	}
	if !cfg.vsync || !cfg.msaa || cfg.drag || cfg.profile || cfg.noCull {
		t.Errorf("unexpected toggles %+v", cfg)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, err := parseFlags([]string{"-width", "640", "-height", "480", "-drag", "-cubes", "500", "-fps", "30", "-far", "250"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.width != 640 || cfg.height != 480 || !cfg.drag || cfg.cubes != 500 || cfg.fps != 30 || cfg.far != 250 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestParseFlagsRejectsInvalid(t *testing.T) {
	cases := map[string][]string{
		"zero width":      {"-width", "0"},
		"inverted planes": {"-near", "10", "-far", "1"},
		"zero near":       {"-near", "0"},
		"negative cubes":  {"-cubes", "-3"},
		"negative fps":    {"-fps", "-1"},
		"unknown flag":    {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := parseFlags(args); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestControllerOptionsDragToLook(t *testing.T) {
	cam := camera.NewCamera()
	ctrl := camera.NewCameraController(cam, controllerOptions(config{drag: true})...)
	if ctrl.IsLooking() {
		t.Fatal("drag mode should not look until the button is held")
	}
	ctrl.MouseButton(common.MouseButtonLeft, true)
	if !ctrl.IsLooking() {
		t.Fatal("holding the left button should enable look")
	}

	free := camera.NewCameraController(camera.NewCamera(), controllerOptions(config{})...)
	if !free.IsLooking() {
		t.Fatal("free look should always be looking")
	}
}

func TestControllerOptionsArrowKeys(t *testing.T) {
	cam := camera.NewCamera()
	ctrl := camera.NewCameraController(cam, controllerOptions(config{})...)
	ctrl.KeyDown(common.KeyUp)
	ctrl.Update(1)
	want := common.Vec3{0, 0, -camera.DefaultMovementSpeed}
	if !cam.Position().ApproxEqual(want, 1e-5) {
		t.Errorf("position = %v, want %v", cam.Position(), want)
	}
}
