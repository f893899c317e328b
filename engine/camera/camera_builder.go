package camera

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
)

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - position: the starting position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithWorldUp sets the world up reference the basis is derived from.
//
// Parameters:
//   - up: world up direction, typically (0, 1, 0)
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's world up
func WithWorldUp(up common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.worldUp = up
	}
}

// WithYaw sets the initial yaw in degrees. -90 looks down -Z.
//
// Parameters:
//   - yaw: yaw angle in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial pitch in degrees.
// The value is taken as given; only ProcessMouseMovement clamps pitch.
//
// Parameters:
//   - pitch: pitch angle in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithMovementSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the multiplier applied to pointer offsets.
//
// Parameters:
//   - sensitivity: degrees per pixel of pointer movement
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial vertical field of view in degrees, clamped to [MinZoom, MaxZoom].
//
// Parameters:
//   - zoom: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = common.Clamp(zoom, MinZoom, MaxZoom)
	}
}

// WithClipSpace selects the depth convention used by ProjectionMatrix.
// Use common.ClipSpaceZO when the projection feeds a WebGPU pipeline.
//
// Parameters:
//   - cs: the clip space convention
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's clip space
func WithClipSpace(cs common.ClipSpace) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.clipSpace = cs
	}
}
