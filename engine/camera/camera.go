package camera

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/chewxy/math32"
)

// Default camera values.
const (
	DefaultYaw              float32 = -90.0
	DefaultPitch            float32 = 0.0
	DefaultMovementSpeed    float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
	DefaultZoom             float32 = 45.0

	// PitchLimit bounds |pitch| in degrees when ProcessMouseMovement constrains it.
	PitchLimit float32 = 89.0
	// MinZoom and MaxZoom bound the vertical field of view in degrees.
	MinZoom float32 = 1.0
	MaxZoom float32 = 45.0
)

type cameraImpl struct {
	position common.Vec3
	front    common.Vec3
	up       common.Vec3
	right    common.Vec3
	worldUp  common.Vec3

	// Euler angles in degrees.
	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32

	clipSpace common.ClipSpace
}

// Camera is a free-fly camera driven by Euler angles.
// Orientation is stored as yaw/pitch in degrees and the orthonormal basis (front, right, up) is
// recomputed whenever the orientation changes. All mutation goes through the Process* methods and the
// two tuning setters.
//
// A Camera is not safe for concurrent use. The engine drives it from a single goroutine.
type Camera interface {
	// Position returns the camera position in world space.
	Position() common.Vec3

	// Front returns the unit look direction.
	Front() common.Vec3

	// Up returns the unit camera up vector.
	Up() common.Vec3

	// Right returns the unit camera right vector.
	Right() common.Vec3

	// WorldUp returns the world up reference used to derive right and up.
	WorldUp() common.Vec3

	// Yaw returns the yaw angle in degrees. Yaw is unbounded.
	Yaw() float32

	// Pitch returns the pitch angle in degrees.
	Pitch() float32

	// Zoom returns the vertical field of view in degrees, within [MinZoom, MaxZoom].
	Zoom() float32

	// MovementSpeed returns the translation speed in world units per second.
	MovementSpeed() float32

	// MouseSensitivity returns the multiplier applied to pointer offsets.
	MouseSensitivity() float32

	// ClipSpace returns the depth convention ProjectionMatrix builds for.
	ClipSpace() common.ClipSpace

	// ProcessKeyboard translates the camera along its basis.
	// The distance moved is MovementSpeed * deltaTime. Orientation is unchanged.
	//
	// Parameters:
	//   - direction: which way to move
	//   - deltaTime: seconds elapsed since the previous frame
	ProcessKeyboard(direction Movement, deltaTime float32)

	// ProcessMouseMovement turns the camera by pointer offsets.
	// Both offsets are scaled by MouseSensitivity and added to yaw and pitch. The y offset is expected
	// to be inverted screen delta (lastY - y) so moving the pointer up raises the pitch.
	//
	// Parameters:
	//   - xOffset: horizontal pointer delta in pixels
	//   - yOffset: inverted vertical pointer delta in pixels
	//   - constrainPitch: clamp pitch to [-PitchLimit, PitchLimit] so the view cannot flip
	ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool)

	// ProcessMouseScroll narrows or widens the field of view.
	// Zoom is decreased by yOffset and clamped to [MinZoom, MaxZoom].
	//
	// Parameters:
	//   - yOffset: wheel delta, positive when scrolling up/away
	ProcessMouseScroll(yOffset float32)

	// ViewMatrix returns LookAt(position, position+front, up).
	// This is the camera-to-world frame; invert it for a world-to-view shader uniform.
	//
	// Returns:
	//   - common.Mat4: the camera frame
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns a perspective projection using Zoom as the vertical field of view.
	//
	// Parameters:
	//   - aspect: viewport aspect ratio (width/height)
	//   - near: near clipping plane distance
	//   - far: far clipping plane distance
	//
	// Returns:
	//   - common.Mat4: the projection matrix in the camera's clip space
	ProjectionMatrix(aspect, near, far float32) common.Mat4

	// SetMovementSpeed sets the translation speed in world units per second.
	SetMovementSpeed(speed float32)

	// SetMouseSensitivity sets the multiplier applied to pointer offsets.
	SetMouseSensitivity(sensitivity float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera and computes its initial basis.
// Defaults: position (0, 0, 0), world up (0, 1, 0), yaw -90 (looking down -Z), pitch 0,
// speed 2.5, sensitivity 0.1, zoom 45, OpenGL clip space.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		worldUp:          common.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		zoom:             DefaultZoom,
		clipSpace:        common.ClipSpaceGL,
	}
	for _, option := range options {
		option(c)
	}
	c.updateCameraVectors()
	return c
}

func (c *cameraImpl) Position() common.Vec3 {
	return c.position
}

func (c *cameraImpl) Front() common.Vec3 {
	return c.front
}

func (c *cameraImpl) Up() common.Vec3 {
	return c.up
}

func (c *cameraImpl) Right() common.Vec3 {
	return c.right
}

func (c *cameraImpl) WorldUp() common.Vec3 {
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Zoom() float32 {
	return c.zoom
}

func (c *cameraImpl) MovementSpeed() float32 {
	return c.movementSpeed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

func (c *cameraImpl) ClipSpace() common.ClipSpace {
	return c.clipSpace
}

func (c *cameraImpl) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case MovementForward:
		c.position = c.position.ScaleAndAdd(c.front, velocity)
	case MovementBackward:
		c.position = c.position.ScaleAndAdd(c.front, -velocity)
	case MovementLeft:
		c.position = c.position.ScaleAndAdd(c.right, -velocity)
	case MovementRight:
		c.position = c.position.ScaleAndAdd(c.right, velocity)
	}
}

func (c *cameraImpl) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.yaw += xOffset * c.mouseSensitivity
	c.pitch += yOffset * c.mouseSensitivity

	if constrainPitch {
		c.pitch = common.Clamp(c.pitch, -PitchLimit, PitchLimit)
	}
	c.updateCameraVectors()
}

func (c *cameraImpl) ProcessMouseScroll(yOffset float32) {
	c.zoom = common.Clamp(c.zoom-yOffset, MinZoom, MaxZoom)
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	return common.LookAt(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProjectionMatrix(aspect, near, far float32) common.Mat4 {
	return c.clipSpace.Perspective(common.Radians(c.zoom), aspect, near, far)
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// updateCameraVectors recomputes front, right and up from the current yaw and pitch.
func (c *cameraImpl) updateCameraVectors() {
	yaw := common.Radians(c.yaw)
	pitch := common.Radians(c.pitch)

	c.front = common.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
