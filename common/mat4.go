package common

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 float32 matrix stored in column-major order (OpenGL/WebGPU convention).
// The element at row r, column c lives at index c*4 + r.
// Mat4 is a plain value type: every operation returns a new Mat4 and never mutates its receiver.
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
//
// Returns:
//   - Mat4: the identity matrix
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// Col returns column i as a 4-component array.
func (m Mat4) Col(i int) [4]float32 {
	return [4]float32{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Translation returns the translation column (elements 12, 13, 14).
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// WithoutTranslation returns m with its translation column zeroed.
// Inverting the result of a camera frame with no translation gives a rotation-only view,
// which is what skybox passes draw with.
func (m Mat4) WithoutTranslation() Mat4 {
	m[12], m[13], m[14] = 0, 0, 0
	return m
}

// Mul returns the matrix product m * b.
// When used with column vectors, b is applied first.
//
// Parameters:
//   - b: right-hand matrix
//
// Returns:
//   - Mat4: the product m * b
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ { // column of b
		for r := 0; r < 4; r++ { // row of m
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVec4 returns m * v for a column vector v.
func (m Mat4) MulVec4(v [4]float32) [4]float32 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return out
}

// Translate returns m post-multiplied by a translation of v, i.e. m * T(v).
//
// Parameters:
//   - v: the translation
//
// Returns:
//   - Mat4: m * T(v)
func (m Mat4) Translate(v Vec3) Mat4 {
	out := m
	for r := 0; r < 4; r++ {
		out[12+r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]
	}
	return out
}

// Scale returns m post-multiplied by a scale of (sx, sy, sz), i.e. m * S.
//
// Parameters:
//   - sx, sy, sz: scale factors along each axis
//
// Returns:
//   - Mat4: m * S(sx, sy, sz)
func (m Mat4) Scale(sx, sy, sz float32) Mat4 {
	out := m
	for r := 0; r < 4; r++ {
		out[r] *= sx
		out[4+r] *= sy
		out[8+r] *= sz
	}
	return out
}

// AxisRotate returns m post-multiplied by a rotation of theta radians about axis, i.e. m * R.
// The axis is normalized internally. A zero axis leaves m unchanged.
//
// Parameters:
//   - axis: the rotation axis
//   - theta: rotation angle in radians (counter-clockwise looking down the axis)
//
// Returns:
//   - Mat4: m * R(axis, theta)
func (m Mat4) AxisRotate(axis Vec3, theta float32) Mat4 {
	l := axis.Len()
	if l == 0 {
		return m
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l
	s := math32.Sin(theta)
	c := math32.Cos(theta)
	t := 1 - c

	rot := Mat4{
		x*x*t + c, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, y*y*t + c, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, z*z*t + c, 0,
		0, 0, 0, 1,
	}
	return m.Mul(rot)
}

// Transpose returns m with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// cofactors returns the 2x2 sub-determinants of the upper and lower row pairs used by both
// Determinant and Inverse (Laplace expansion).
func (m Mat4) cofactors() (s, c [6]float32) {
	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[5] = m[10]*m[15] - m[14]*m[11]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[0] = m[8]*m[13] - m[12]*m[9]
	return s, c
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float32 {
	s, c := m.cofactors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse computes the full inverse of m using the Laplace expansion (cofactor) method.
// It is a general inverse, so it also turns a camera frame from LookAt into a world-to-view matrix.
// If m is singular the zero matrix and false are returned.
//
// Returns:
//   - Mat4: the inverse of m, or the zero matrix when singular
//   - bool: true if m was invertible
func (m Mat4) Inverse() (Mat4, bool) {
	s, c := m.cofactors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		return Mat4{}, false
	}
	inv := 1 / det

	return Mat4{
		(m[5]*c[5] - m[6]*c[4] + m[7]*c[3]) * inv,
		(-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]) * inv,
		(m[13]*s[5] - m[14]*s[4] + m[15]*s[3]) * inv,
		(-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]) * inv,

		(-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]) * inv,
		(m[0]*c[5] - m[2]*c[2] + m[3]*c[1]) * inv,
		(-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]) * inv,
		(m[8]*s[5] - m[10]*s[2] + m[11]*s[1]) * inv,

		(m[4]*c[4] - m[5]*c[2] + m[7]*c[0]) * inv,
		(-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]) * inv,
		(m[12]*s[4] - m[13]*s[2] + m[15]*s[0]) * inv,
		(-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]) * inv,

		(-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]) * inv,
		(m[0]*c[3] - m[1]*c[1] + m[2]*c[0]) * inv,
		(-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]) * inv,
		(m[8]*s[3] - m[9]*s[1] + m[10]*s[0]) * inv,
	}, true
}

// LookAt builds the camera frame for an eye looking at center.
// The columns are the orthonormal basis (right, up, -front) and the eye position, so the result maps
// camera space to world space. Invert it to get the world-to-view matrix a shader expects.
// front parallel to up yields a degenerate basis; callers must pass a non-parallel up.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up hint, typically (0, 1, 0)
//
// Returns:
//   - Mat4: the camera-to-world matrix
func LookAt(eye, center, up Vec3) Mat4 {
	front := center.Sub(eye).Normalize()
	right := front.Cross(up).Normalize()
	trueUp := right.Cross(front)

	return Mat4{
		right[0], right[1], right[2], 0,
		trueUp[0], trueUp[1], trueUp[2], 0,
		-front[0], -front[1], -front[2], 0,
		eye[0], eye[1], eye[2], 1,
	}
}

// Perspective creates a symmetric perspective projection with OpenGL clip depth [-1, 1].
// near and far must satisfy 0 < near < far; this is not validated.
//
// Parameters:
//   - fovY: full vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// PerspectiveZO creates a symmetric perspective projection with WebGPU clip depth [0, 1].
//
// Parameters:
//   - fovY: full vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4: the projection matrix
func PerspectiveZO(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, (near * far) / (near - far), 0,
	}
}

// Orthographic creates an orthographic projection mapping the given box to OpenGL clip space.
//
// Parameters:
//   - left, right: x extents of the view box
//   - bottom, top: y extents of the view box
//   - near, far: z extents of the view box (distances along -Z)
//
// Returns:
//   - Mat4: the projection matrix
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	return Mat4{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}
}

// OrthographicZO creates an orthographic projection mapping the given box to WebGPU clip space (depth [0, 1]).
//
// Parameters:
//   - left, right: x extents of the view box
//   - bottom, top: y extents of the view box
//   - near, far: z extents of the view box (distances along -Z)
//
// Returns:
//   - Mat4: the projection matrix
func OrthographicZO(left, right, bottom, top, near, far float32) Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	return Mat4{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, nf, 0,
		(left + right) * lr, (top + bottom) * bt, near * nf, 1,
	}
}

// ApproxEqual reports whether every element of m is within eps of b.
func (m Mat4) ApproxEqual(b Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// String formats m row by row, one row per line.
func (m Mat4) String() string {
	var sb strings.Builder
	sb.WriteString("mat4(\n")
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "  %g, %g, %g, %g\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	sb.WriteString(")")
	return sb.String()
}
