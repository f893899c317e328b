package common

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func randomMat4(rng *rand.Rand) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = rng.Float32()*4 - 2
	}
	return m
}

func TestMat4IdentityAndAccessors(t *testing.T) {
	m := Identity()
	if m != Mat4(mgl32.Ident4()) {
		t.Fatalf("identity = %v", m)
	}

	m = Identity().Translate(Vec3{1, 2, 3})
	if got := m.Translation(); got != (Vec3{1, 2, 3}) {
		t.Fatalf("translation = %v, want (1, 2, 3)", got)
	}
	if got := m.At(1, 3); got != 2 {
		t.Fatalf("At(1, 3) = %v, want 2", got)
	}
	if got := m.Col(3); got != [4]float32{1, 2, 3, 1} {
		t.Fatalf("Col(3) = %v", got)
	}
	if got := m.WithoutTranslation(); got != Identity() {
		t.Fatalf("WithoutTranslation = %v, want identity", got)
	}
	if m.Translation() != (Vec3{1, 2, 3}) {
		t.Fatalf("WithoutTranslation mutated its receiver")
	}
}

func TestMat4MulMatchesMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a, b := randomMat4(rng), randomMat4(rng)
		got := a.Mul(b)
		want := Mat4(mgl32.Mat4(a).Mul4(mgl32.Mat4(b)))
		if !got.ApproxEqual(want, 1e-5) {
			t.Fatalf("mul:\n%v\nwant\n%v", got, want)
		}
	}
}

func TestMat4MulVec4(t *testing.T) {
	m := Identity().Translate(Vec3{1, 2, 3})
	if got := m.MulVec4([4]float32{1, 1, 1, 1}); got != [4]float32{2, 3, 4, 1} {
		t.Fatalf("point = %v, want (2, 3, 4, 1)", got)
	}
	if got := m.MulVec4([4]float32{1, 1, 1, 0}); got != [4]float32{1, 1, 1, 0} {
		t.Fatalf("direction = %v, want (1, 1, 1, 0)", got)
	}
}

func TestMat4TransformsMatchMathgl(t *testing.T) {
	axis := Vec3{1, 2, -0.5}
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{"translate", Identity().Translate(Vec3{1, -2, 3}), mgl32.Translate3D(1, -2, 3)},
		{"scale", Identity().Scale(2, 3, 4), mgl32.Scale3D(2, 3, 4)},
		{"axis rotate", Identity().AxisRotate(axis, 0.9), mgl32.HomogRotate3D(0.9, mgl32.Vec3(axis.Normalize()))},
		{
			"composed in call order",
			Identity().Translate(Vec3{0, 0, -3}).AxisRotate(Vec3{1, 0.3, 0.5}, Radians(20)).Scale(0.5, 0.5, 0.5),
			mgl32.Translate3D(0, 0, -3).
				Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(20), mgl32.Vec3{1, 0.3, 0.5}.Normalize())).
				Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)),
		},
		{"transpose", Identity().Translate(Vec3{1, 2, 3}).Transpose(), mgl32.Translate3D(1, 2, 3).Transpose()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(Mat4(tt.want), 1e-5) {
				t.Fatalf("got\n%v\nwant\n%v", tt.got, Mat4(tt.want))
			}
		})
	}
}

func TestMat4AxisRotateZeroAxisIsNoop(t *testing.T) {
	m := Identity().Translate(Vec3{1, 2, 3})
	if got := m.AxisRotate(Vec3{}, 1); got != m {
		t.Fatalf("rotation about zero axis changed the matrix: %v", got)
	}
}

func TestMat4Determinant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		m := randomMat4(rng)
		got := m.Determinant()
		want := mgl32.Mat4(m).Det()
		if math32.Abs(got-want) > 1e-3 {
			t.Fatalf("det = %v, want %v", got, want)
		}
	}
	if got := Identity().Scale(2, 3, 4).Determinant(); got != 24 {
		t.Fatalf("det(scale) = %v, want 24", got)
	}
}

func TestMat4InverseTimesSelfIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		m := randomMat4(rng)
		if math32.Abs(m.Determinant()) < 1 {
			continue
		}
		inv, ok := m.Inverse()
		if !ok {
			t.Fatalf("inverse reported singular for det %v", m.Determinant())
		}
		if got := m.Mul(inv); !got.ApproxEqual(Identity(), 1e-3) {
			t.Fatalf("m * inverse(m) =\n%v", got)
		}
		if got := inv.Mul(m); !got.ApproxEqual(Identity(), 1e-3) {
			t.Fatalf("inverse(m) * m =\n%v", got)
		}
	}
}

func TestMat4InverseSingular(t *testing.T) {
	m := Identity().Scale(1, 0, 1)
	inv, ok := m.Inverse()
	if ok {
		t.Fatalf("expected singular matrix to report false")
	}
	if inv != (Mat4{}) {
		t.Fatalf("singular inverse = %v, want zero matrix", inv)
	}
}

func TestLookAtCanonicalOrientationIsIdentity(t *testing.T) {
	eye := Vec3{0, 0, 0}
	m := LookAt(eye, eye.Add(Vec3{0, 0, -1}), Vec3{0, 1, 0})
	if !m.ApproxEqual(Identity(), 1e-6) {
		t.Fatalf("lookAt down -Z =\n%v\nwant identity", m)
	}

	eye = Vec3{4, -2, 7}
	m = LookAt(eye, eye.Add(Vec3{0, 0, -1}), Vec3{0, 1, 0})
	if !m.WithoutTranslation().ApproxEqual(Identity(), 1e-6) {
		t.Fatalf("rotation block =\n%v\nwant identity", m)
	}
	if m.Translation() != eye {
		t.Fatalf("translation = %v, want %v", m.Translation(), eye)
	}
}

func TestLookAtInverseMatchesMathglView(t *testing.T) {
	cases := []struct{ eye, center, up Vec3 }{
		{Vec3{0, 0, 3}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{1, 2, 3}, Vec3{-4, 0.5, 2}, Vec3{0, 1, 0}},
		{Vec3{-2, 5, -1}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		frame := LookAt(tc.eye, tc.center, tc.up)
		view, ok := frame.Inverse()
		if !ok {
			t.Fatalf("lookAt frame is singular")
		}
		want := Mat4(mgl32.LookAtV(mgl32.Vec3(tc.eye), mgl32.Vec3(tc.center), mgl32.Vec3(tc.up)))
		if !view.ApproxEqual(want, 1e-4) {
			t.Fatalf("inverse(lookAt) =\n%v\nmgl32 view =\n%v", view, want)
		}
	}
}

func TestLookAtBasisIsOrthonormal(t *testing.T) {
	m := LookAt(Vec3{3, 1, -2}, Vec3{0, 0.5, 0}, Vec3{0, 1, 0})
	right := Vec3{m[0], m[1], m[2]}
	up := Vec3{m[4], m[5], m[6]}
	back := Vec3{m[8], m[9], m[10]}
	for name, v := range map[string]Vec3{"right": right, "up": up, "back": back} {
		if math32.Abs(v.Len()-1) > 1e-5 {
			t.Fatalf("%s has length %v", name, v.Len())
		}
	}
	if d := right.Dot(up); math32.Abs(d) > 1e-5 {
		t.Fatalf("right.up = %v", d)
	}
	if d := right.Dot(back); math32.Abs(d) > 1e-5 {
		t.Fatalf("right.back = %v", d)
	}
	if d := up.Dot(back); math32.Abs(d) > 1e-5 {
		t.Fatalf("up.back = %v", d)
	}
}

func TestProjectionsMatchMathgl(t *testing.T) {
	got := Perspective(Radians(45), 800.0/600.0, 0.1, 100)
	want := Mat4(mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100))
	if !got.ApproxEqual(want, 1e-4) {
		t.Fatalf("perspective =\n%v\nwant\n%v", got, want)
	}

	got = Orthographic(-10, 10, -10, 10, 1, 17.5)
	want = Mat4(mgl32.Ortho(-10, 10, -10, 10, 1, 17.5))
	if !got.ApproxEqual(want, 1e-5) {
		t.Fatalf("orthographic =\n%v\nwant\n%v", got, want)
	}
}

func TestZeroToOneProjectionsMapDepth(t *testing.T) {
	tests := []struct {
		name string
		proj Mat4
	}{
		{"perspective", PerspectiveZO(Radians(60), 1.5, 0.5, 50)},
		{"orthographic", OrthographicZO(-2, 2, -1, 1, 0.5, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			near := (Vec3{0, 0, -0.5}).TransformMat4(tt.proj)
			far := (Vec3{0, 0, -50}).TransformMat4(tt.proj)
			if math32.Abs(near[2]) > 1e-5 {
				t.Fatalf("near depth = %v, want 0", near[2])
			}
			if math32.Abs(far[2]-1) > 1e-4 {
				t.Fatalf("far depth = %v, want 1", far[2])
			}
		})
	}
}

func TestMat4String(t *testing.T) {
	s := Identity().Translate(Vec3{5, 0, 0}).String()
	if !strings.HasPrefix(s, "mat4(\n  1, 0, 0, 5\n") {
		t.Fatalf("String() = %q", s)
	}
}
