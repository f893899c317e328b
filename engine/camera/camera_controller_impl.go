package camera

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	camera Camera

	bindings map[uint32]Movement
	held     map[uint32]bool

	// Pointer tracking for offset computation.
	firstMouse bool
	lastX      float64
	lastY      float64

	lookButton     int
	lookHeld       bool
	scrollScale    float32
	invertY        bool
	constrainPitch bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller for cam with W/S/A/D bound to forward/backward/left/right,
// look always on, pitch constrained and a scroll scale of 1.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		camera: cam,
		bindings: map[uint32]Movement{
			common.KeyW: MovementForward,
			common.KeyS: MovementBackward,
			common.KeyA: MovementLeft,
			common.KeyD: MovementRight,
		},
		held:           make(map[uint32]bool),
		firstMouse:     true,
		lookButton:     NoLookButton,
		scrollScale:    1,
		constrainPitch: true,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) KeyDown(keyCode uint32) {
	if _, ok := cc.bindings[keyCode]; ok {
		cc.held[keyCode] = true
	}
}

func (cc *cameraControllerImpl) KeyUp(keyCode uint32) {
	delete(cc.held, keyCode)
}

func (cc *cameraControllerImpl) MouseMove(x, y float64) {
	if !cc.IsLooking() {
		return
	}
	if cc.firstMouse {
		cc.lastX, cc.lastY = x, y
		cc.firstMouse = false
		return
	}

	xOffset := float32(x - cc.lastX)
	// Reversed since y-coordinates go from top to bottom.
	yOffset := float32(cc.lastY - y)
	if cc.invertY {
		yOffset = -yOffset
	}
	cc.lastX, cc.lastY = x, y

	cc.camera.ProcessMouseMovement(xOffset, yOffset, cc.constrainPitch)
}

func (cc *cameraControllerImpl) MouseButton(button int, pressed bool) {
	if cc.lookButton == NoLookButton || button != cc.lookButton {
		return
	}
	cc.lookHeld = pressed
	if pressed {
		cc.firstMouse = true
	}
}

func (cc *cameraControllerImpl) Scroll(delta float32) {
	cc.camera.ProcessMouseScroll(delta * cc.scrollScale)
}

func (cc *cameraControllerImpl) Update(deltaTime float32) {
	// Keys sharing a direction move the camera once.
	var active [movementCount]bool
	for key := range cc.held {
		if d := cc.bindings[key]; d >= 0 && d < movementCount {
			active[d] = true
		}
	}
	for d, on := range active {
		if on {
			cc.camera.ProcessKeyboard(Movement(d), deltaTime)
		}
	}
}

func (cc *cameraControllerImpl) IsLooking() bool {
	return cc.lookButton == NoLookButton || cc.lookHeld
}

func (cc *cameraControllerImpl) Reset() {
	clear(cc.held)
	cc.lookHeld = false
	cc.firstMouse = true
}
