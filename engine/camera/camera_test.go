package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	if c.Position() != (common.Vec3{}) {
		t.Fatalf("position = %v, want origin", c.Position())
	}
	if c.WorldUp() != (common.Vec3{0, 1, 0}) {
		t.Fatalf("world up = %v", c.WorldUp())
	}
	if c.Yaw() != DefaultYaw || c.Pitch() != DefaultPitch {
		t.Fatalf("yaw/pitch = %v/%v", c.Yaw(), c.Pitch())
	}
	if c.MovementSpeed() != 2.5 || c.MouseSensitivity() != 0.1 || c.Zoom() != 45 {
		t.Fatalf("speed/sensitivity/zoom = %v/%v/%v", c.MovementSpeed(), c.MouseSensitivity(), c.Zoom())
	}
	if c.ClipSpace() != common.ClipSpaceGL {
		t.Fatalf("clip space = %v", c.ClipSpace())
	}
}

func TestNewCameraFrontLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(WithPosition(common.Vec3{0, 0, 3}))

	if !c.Front().ApproxEqual(common.Vec3{0, 0, -1}, tolerance) {
		t.Fatalf("front = %v, want (0, 0, -1)", c.Front())
	}
	if !c.Right().ApproxEqual(common.Vec3{1, 0, 0}, tolerance) {
		t.Fatalf("right = %v, want (1, 0, 0)", c.Right())
	}
	if !c.Up().ApproxEqual(common.Vec3{0, 1, 0}, tolerance) {
		t.Fatalf("up = %v, want (0, 1, 0)", c.Up())
	}
}

func TestCameraBasisStaysOrthonormal(t *testing.T) {
	c := NewCamera(WithYaw(30), WithPitch(-20))
	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(float32(i%7)-3, float32(i%5)-2, true)

		f, r, u := c.Front(), c.Right(), c.Up()
		for name, v := range map[string]common.Vec3{"front": f, "right": r, "up": u} {
			if math32.Abs(v.Len()-1) > tolerance {
				t.Fatalf("step %d: %s length %v", i, name, v.Len())
			}
		}
		if math32.Abs(f.Dot(r)) > tolerance || math32.Abs(f.Dot(u)) > tolerance || math32.Abs(r.Dot(u)) > tolerance {
			t.Fatalf("step %d: basis not orthogonal: f=%v r=%v u=%v", i, f, r, u)
		}
	}
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(0, 500, true)
		if c.Pitch() > PitchLimit {
			t.Fatalf("pitch %v exceeded %v", c.Pitch(), PitchLimit)
		}
	}
	if c.Pitch() != 89 {
		t.Fatalf("pitch = %v, want exactly 89", c.Pitch())
	}

	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(0, -500, true)
	}
	if c.Pitch() != -89 {
		t.Fatalf("pitch = %v, want exactly -89", c.Pitch())
	}
}

func TestProcessMouseMovementUnconstrained(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseMovement(0, 1000, false)
	if c.Pitch() != 100 {
		t.Fatalf("pitch = %v, want 100 when unconstrained", c.Pitch())
	}
}

func TestProcessMouseMovementScalesBySensitivity(t *testing.T) {
	c := NewCamera(WithMouseSensitivity(0.5))
	c.ProcessMouseMovement(20, 10, true)
	if c.Yaw() != DefaultYaw+10 {
		t.Fatalf("yaw = %v, want %v", c.Yaw(), DefaultYaw+10)
	}
	if c.Pitch() != 5 {
		t.Fatalf("pitch = %v, want 5", c.Pitch())
	}
	// Yaw is never wrapped.
	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(100, 0, true)
	}
	if c.Yaw() < 4000 {
		t.Fatalf("yaw = %v, expected unbounded growth", c.Yaw())
	}
}

func TestProcessMouseScrollClampsZoom(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseScroll(5)
	if c.Zoom() != 40 {
		t.Fatalf("zoom = %v, want 40", c.Zoom())
	}
	for i := 0; i < 20; i++ {
		c.ProcessMouseScroll(10)
	}
	if c.Zoom() != MinZoom {
		t.Fatalf("zoom = %v, want exactly %v", c.Zoom(), MinZoom)
	}
	for i := 0; i < 20; i++ {
		c.ProcessMouseScroll(-10)
	}
	if c.Zoom() != MaxZoom {
		t.Fatalf("zoom = %v, want exactly %v", c.Zoom(), MaxZoom)
	}
}

func TestProcessKeyboard(t *testing.T) {
	start := common.Vec3{1, 2, 3}
	tests := []struct {
		direction Movement
		want      common.Vec3
	}{
		{MovementForward, common.Vec3{1, 2, 2}},
		{MovementBackward, common.Vec3{1, 2, 4}},
		{MovementLeft, common.Vec3{0, 2, 3}},
		{MovementRight, common.Vec3{2, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			c := NewCamera(WithPosition(start), WithMovementSpeed(2))
			front := c.Front()
			c.ProcessKeyboard(tt.direction, 0.5)
			if !c.Position().ApproxEqual(tt.want, tolerance) {
				t.Fatalf("position = %v, want %v", c.Position(), tt.want)
			}
			if c.Front() != front {
				t.Fatalf("keyboard movement changed orientation")
			}
		})
	}
}

func TestProcessKeyboardForwardThenBackwardReturns(t *testing.T) {
	start := common.Vec3{-2, 0.5, 7}
	c := NewCamera(WithPosition(start), WithYaw(33), WithPitch(-12))
	for _, dt := range []float32{0.016, 0.1, 1.7} {
		c.ProcessKeyboard(MovementForward, dt)
		c.ProcessKeyboard(MovementBackward, dt)
		c.ProcessKeyboard(MovementLeft, dt)
		c.ProcessKeyboard(MovementRight, dt)
	}
	if !c.Position().ApproxEqual(start, tolerance) {
		t.Fatalf("position = %v, want %v", c.Position(), start)
	}
}

func TestViewMatrixAtDefaultOrientation(t *testing.T) {
	c := NewCamera(WithPosition(common.Vec3{0, 0, 3}))
	view := c.ViewMatrix()

	if got := view.Translation(); got != (common.Vec3{0, 0, 3}) {
		t.Fatalf("translation = %v, want (0, 0, 3)", got)
	}
	if !view.WithoutTranslation().ApproxEqual(common.Identity(), tolerance) {
		t.Fatalf("rotation block =\n%v\nwant identity", view)
	}
}

func TestViewMatrixInverseMatchesMathgl(t *testing.T) {
	c := NewCamera(WithPosition(common.Vec3{1, 2, 5}))
	c.ProcessMouseMovement(120, -80, true)

	inv, ok := c.ViewMatrix().Inverse()
	if !ok {
		t.Fatalf("view matrix is singular")
	}
	pos, front, up := c.Position(), c.Front(), c.Up()
	want := common.Mat4(mgl32.LookAtV(mgl32.Vec3(pos), mgl32.Vec3(pos.Add(front)), mgl32.Vec3(up)))
	if !inv.ApproxEqual(want, 1e-4) {
		t.Fatalf("inverse view =\n%v\nwant\n%v", inv, want)
	}
}

func TestProjectionMatrixUsesZoom(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseScroll(15)

	got := c.ProjectionMatrix(4.0/3.0, 0.1, 100)
	want := common.Mat4(mgl32.Perspective(mgl32.DegToRad(30), 4.0/3.0, 0.1, 100))
	if !got.ApproxEqual(want, 1e-4) {
		t.Fatalf("projection =\n%v\nwant\n%v", got, want)
	}

	zo := NewCamera(WithClipSpace(common.ClipSpaceZO))
	if got := zo.ProjectionMatrix(1, 0.1, 100); got != common.PerspectiveZO(common.Radians(45), 1, 0.1, 100) {
		t.Fatalf("zo projection mismatch")
	}
}

func TestTuningSetters(t *testing.T) {
	c := NewCamera()
	c.SetMovementSpeed(10)
	c.SetMouseSensitivity(0.25)
	if c.MovementSpeed() != 10 || c.MouseSensitivity() != 0.25 {
		t.Fatalf("speed/sensitivity = %v/%v", c.MovementSpeed(), c.MouseSensitivity())
	}
}

func TestWithZoomClamps(t *testing.T) {
	if z := NewCamera(WithZoom(90)).Zoom(); z != MaxZoom {
		t.Fatalf("zoom = %v, want %v", z, MaxZoom)
	}
	if z := NewCamera(WithZoom(0)).Zoom(); z != MinZoom {
		t.Fatalf("zoom = %v, want %v", z, MinZoom)
	}
}

func TestMovementString(t *testing.T) {
	if MovementForward.String() != "forward" || MovementRight.String() != "right" || Movement(99).String() != "unknown" {
		t.Fatalf("unexpected movement names")
	}
}
