package common

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRadiansDegreesRoundTrip(t *testing.T) {
	tests := []struct {
		deg, rad float32
	}{
		{0, 0},
		{90, math32.Pi / 2},
		{180, math32.Pi},
		{-45, -math32.Pi / 4},
	}
	for _, tt := range tests {
		if got := Radians(tt.deg); math32.Abs(got-tt.rad) > 1e-6 {
			t.Fatalf("Radians(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if got := Degrees(tt.rad); math32.Abs(got-tt.deg) > 1e-4 {
			t.Fatalf("Degrees(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 1, 45, 5},
		{-3, 1, 45, 1},
		{90, -89, 89, 89},
		{-90, -89, 89, -89},
		{89, -89, 89, 89},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClipSpaceSelectsProjection(t *testing.T) {
	fov, aspect, near, far := Radians(45), float32(1.5), float32(0.1), float32(100)
	if got := ClipSpaceGL.Perspective(fov, aspect, near, far); got != Perspective(fov, aspect, near, far) {
		t.Fatalf("gl perspective mismatch")
	}
	if got := ClipSpaceZO.Perspective(fov, aspect, near, far); got != PerspectiveZO(fov, aspect, near, far) {
		t.Fatalf("zo perspective mismatch")
	}
	if got := ClipSpaceZO.Orthographic(-1, 1, -1, 1, near, far); got != OrthographicZO(-1, 1, -1, 1, near, far) {
		t.Fatalf("zo orthographic mismatch")
	}
	if ClipSpaceGL.String() != "gl" || ClipSpaceZO.String() != "zo" {
		t.Fatalf("unexpected clip space names %q %q", ClipSpaceGL, ClipSpaceZO)
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]float32{}) != nil {
		t.Fatalf("empty slice should produce nil")
	}
	m := Identity()
	b := SliceToBytes(m[:])
	if len(b) != 64 {
		t.Fatalf("len = %d, want 64", len(b))
	}
}
