package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "b", "c"); got != "b" {
		t.Errorf("Coalesce strings = %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce zeros = %d", got)
	}
	if got := Coalesce[float32](); got != 0 {
		t.Errorf("Coalesce empty = %v", got)
	}
	if got := Coalesce(Vec3{}, Vec3{0, 1, 0}); got != (Vec3{0, 1, 0}) {
		t.Errorf("Coalesce vectors = %v", got)
	}
}
