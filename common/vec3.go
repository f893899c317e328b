package common

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
)

// Vec3 is a 3-component float32 vector used for points and directions in world space.
// Vec3 is a plain value type: every operation returns a new Vec3 and never mutates its receiver.
type Vec3 [3]float32

// NewVec3 creates a Vec3 from its components.
//
// Parameters:
//   - x, y, z: vector components
//
// Returns:
//   - Vec3: the new vector
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// X returns the first component.
func (a Vec3) X() float32 { return a[0] }

// Y returns the second component.
func (a Vec3) Y() float32 { return a[1] }

// Z returns the third component.
func (a Vec3) Z() float32 { return a[2] }

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul returns the component-wise product of a and b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Div returns the component-wise quotient of a and b.
// A zero component in b produces ±Inf or NaN in the matching result component.
func (a Vec3) Div(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// Scale returns a with every component multiplied by s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// ScaleAndAdd returns a + b*s.
//
// Parameters:
//   - b: the vector to scale before adding
//   - s: the scale applied to b
//
// Returns:
//   - Vec3: a + b*s
func (a Vec3) ScaleAndAdd(b Vec3, s float32) Vec3 {
	return Vec3{a[0] + b[0]*s, a[1] + b[1]*s, a[2] + b[2]*s}
}

// Negate returns -a.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a[0], -a[1], -a[2]}
}

// Inverse returns the component-wise reciprocal of a.
func (a Vec3) Inverse() Vec3 {
	return Vec3{1 / a[0], 1 / a[1], 1 / a[2]}
}

// Min returns the component-wise minimum of a and b.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// Max returns the component-wise maximum of a and b.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product a × b.
// The result is the zero vector when a and b are parallel or either is zero.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Len returns the Euclidean length of a.
func (a Vec3) Len() float32 {
	return math32.Sqrt(a.LenSqr())
}

// LenSqr returns the squared length of a. Prefer it over Len for comparisons.
func (a Vec3) LenSqr() float32 {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
}

// Distance returns the Euclidean distance between a and b.
func (a Vec3) Distance(b Vec3) float32 {
	return b.Sub(a).Len()
}

// DistanceSqr returns the squared distance between a and b.
func (a Vec3) DistanceSqr(b Vec3) float32 {
	return b.Sub(a).LenSqr()
}

// Normalize returns a scaled to unit length.
// A zero-length vector is returned unchanged rather than dividing by zero, so callers must not
// assume the result has length 1 for degenerate input.
//
// Returns:
//   - Vec3: the unit-length vector, or a itself when its length is 0
func (a Vec3) Normalize() Vec3 {
	l := a.LenSqr()
	if l > 0 {
		return a.Scale(1 / math32.Sqrt(l))
	}
	return a
}

// Lerp linearly interpolates from a to b by t. t is not clamped.
//
// Parameters:
//   - b: the target vector
//   - t: interpolation amount (0 = a, 1 = b)
//
// Returns:
//   - Vec3: the interpolated vector
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// Hermite performs a cubic hermite interpolation between a and d using b and c as control points.
//
// Parameters:
//   - b, c: control points
//   - d: the end point
//   - t: interpolation amount
//
// Returns:
//   - Vec3: the interpolated vector
func (a Vec3) Hermite(b, c, d Vec3, t float32) Vec3 {
	t2 := t * t
	f1 := t2*(2*t-3) + 1
	f2 := t2*(t-2) + t
	f3 := t2 * (t - 1)
	f4 := t2 * (3 - 2*t)
	return a.Scale(f1).Add(b.Scale(f2)).Add(c.Scale(f3)).Add(d.Scale(f4))
}

// Bezier performs a cubic bezier interpolation between a and d using b and c as control points.
//
// Parameters:
//   - b, c: control points
//   - d: the end point
//   - t: interpolation amount
//
// Returns:
//   - Vec3: the interpolated vector
func (a Vec3) Bezier(b, c, d Vec3, t float32) Vec3 {
	inv := 1 - t
	inv2 := inv * inv
	t2 := t * t
	f1 := inv2 * inv
	f2 := 3 * t * inv2
	f3 := 3 * t2 * inv
	f4 := t2 * t
	return a.Scale(f1).Add(b.Scale(f2)).Add(c.Scale(f3)).Add(d.Scale(f4))
}

// Angle returns the unsigned angle in radians between a and b.
// The cosine is clamped to [-1, 1] before acos so floating-point overshoot cannot produce NaN.
func (a Vec3) Angle(b Vec3) float32 {
	cosine := a.Normalize().Dot(b.Normalize())
	if cosine > 1 {
		return 0
	}
	if cosine < -1 {
		return math32.Pi
	}
	return math32.Acos(cosine)
}

// SignedAngleZ returns the angle between a and b, negative when the z component of a × b is not positive.
// Useful for angles measured in the XY plane.
func (a Vec3) SignedAngleZ(b Vec3) float32 {
	angle := a.Angle(b)
	if a.Cross(b)[2] > 0 {
		return angle
	}
	return -angle
}

// RotateByVector rotates a about the unit axis by theta radians using the closed-form Rodrigues
// rotation. The axis is not normalized here.
//
// Parameters:
//   - axis: the unit rotation axis
//   - theta: rotation angle in radians
//
// Returns:
//   - Vec3: the rotated vector
func (a Vec3) RotateByVector(axis Vec3, theta float32) Vec3 {
	c := math32.Cos(theta)
	s := math32.Sin(theta)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	return Vec3{
		(x*x*t+c)*a[0] + (x*y*t-z*s)*a[1] + (x*z*t+y*s)*a[2],
		(y*x*t+z*s)*a[0] + (y*y*t+c)*a[1] + (y*z*t-x*s)*a[2],
		(x*z*t-y*s)*a[0] + (y*z*t+x*s)*a[1] + (z*z*t+c)*a[2],
	}
}

// RotateX rotates a around the X-parallel axis passing through origin.
//
// Parameters:
//   - origin: a point on the rotation axis
//   - theta: rotation angle in radians
//
// Returns:
//   - Vec3: the rotated point
func (a Vec3) RotateX(origin Vec3, theta float32) Vec3 {
	p := a.Sub(origin)
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Vec3{p[0], p[1]*c - p[2]*s, p[1]*s + p[2]*c}.Add(origin)
}

// RotateY rotates a around the Y-parallel axis passing through origin.
//
// Parameters:
//   - origin: a point on the rotation axis
//   - theta: rotation angle in radians
//
// Returns:
//   - Vec3: the rotated point
func (a Vec3) RotateY(origin Vec3, theta float32) Vec3 {
	p := a.Sub(origin)
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Vec3{p[2]*s + p[0]*c, p[1], p[2]*c - p[0]*s}.Add(origin)
}

// RotateZ rotates a around the Z-parallel axis passing through origin.
//
// Parameters:
//   - origin: a point on the rotation axis
//   - theta: rotation angle in radians
//
// Returns:
//   - Vec3: the rotated point
func (a Vec3) RotateZ(origin Vec3, theta float32) Vec3 {
	p := a.Sub(origin)
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Vec3{p[0]*c - p[1]*s, p[0]*s + p[1]*c, p[2]}.Add(origin)
}

// TransformMat4 transforms a as a homogeneous point (w = 1) by m and performs the perspective divide.
// When the resulting w is 0 the divide uses 1 instead, so the result is never Inf/NaN from that step.
//
// Parameters:
//   - m: the column-major transform
//
// Returns:
//   - Vec3: the transformed point
func (a Vec3) TransformMat4(m Mat4) Vec3 {
	x, y, z := a[0], a[1], a[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}

// TransformDirection transforms a as a direction (w = 0) by the upper 3x3 block of m.
func (a Vec3) TransformDirection(m Mat4) Vec3 {
	x, y, z := a[0], a[1], a[2]
	return Vec3{
		m[0]*x + m[4]*y + m[8]*z,
		m[1]*x + m[5]*y + m[9]*z,
		m[2]*x + m[6]*y + m[10]*z,
	}
}

// ApproxEqual reports whether every component of a is within eps of b.
func (a Vec3) ApproxEqual(b Vec3, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// String formats a as "vec3(x, y, z)".
func (a Vec3) String() string {
	return fmt.Sprintf("vec3(%g, %g, %g)", a[0], a[1], a[2])
}

// RandomVec3 returns a uniformly distributed direction with length scale.
// A scale of 0 yields a unit vector.
//
// Parameters:
//   - rng: the random source; callers own seeding
//   - scale: length of the returned vector
//
// Returns:
//   - Vec3: the random vector
func RandomVec3(rng *rand.Rand, scale float32) Vec3 {
	if scale == 0 {
		scale = 1
	}
	r := rng.Float32() * 2 * math32.Pi
	z := rng.Float32()*2 - 1
	zScale := math32.Sqrt(1-z*z) * scale
	return Vec3{math32.Cos(r) * zScale, math32.Sin(r) * zScale, z * scale}
}
