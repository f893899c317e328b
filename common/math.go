package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// ClipSpace selects the depth range a projection matrix maps the near/far planes into.
type ClipSpace int

const (
	// ClipSpaceGL maps depth to [-1, 1] (OpenGL/WebGL, glm, mathgl).
	ClipSpaceGL ClipSpace = iota
	// ClipSpaceZO maps depth to [0, 1] (WebGPU, Vulkan, D3D).
	ClipSpaceZO
)

// String returns the short name of the clip space convention.
func (cs ClipSpace) String() string {
	switch cs {
	case ClipSpaceGL:
		return "gl"
	case ClipSpaceZO:
		return "zo"
	default:
		return "unknown"
	}
}

// Perspective builds a perspective projection in this clip space.
//
// Parameters:
//   - fovY: full vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near, far: clipping plane distances (0 < near < far)
//
// Returns:
//   - Mat4: the projection matrix
func (cs ClipSpace) Perspective(fovY, aspect, near, far float32) Mat4 {
	if cs == ClipSpaceZO {
		return PerspectiveZO(fovY, aspect, near, far)
	}
	return Perspective(fovY, aspect, near, far)
}

// Orthographic builds an orthographic projection in this clip space.
func (cs ClipSpace) Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	if cs == ClipSpaceZO {
		return OrthographicZO(left, right, bottom, top, near, far)
	}
	return Orthographic(left, right, bottom, top, near, far)
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * (180 / math32.Pi)
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound (must be >= lo)
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
