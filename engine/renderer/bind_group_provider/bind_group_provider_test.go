package bind_group_provider

import "testing"

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("camera", WithVertexCount(36))
	if p.Label() != "camera" {
		t.Errorf("Label() = %q", p.Label())
	}
	if p.VertexCount() != 36 {
		t.Errorf("VertexCount() = %d, want 36", p.VertexCount())
	}
	if p.BindGroup() != nil || p.Buffer(0) != nil || p.VertexBuffer(0) != nil {
		t.Error("new provider should hold no GPU resources")
	}
	if p.VertexSlots() != 0 {
		t.Errorf("VertexSlots() = %d, want 0", p.VertexSlots())
	}

	p.SetVertexCount(6)
	if p.VertexCount() != 6 {
		t.Errorf("VertexCount() = %d after SetVertexCount(6)", p.VertexCount())
	}
	p.Release()
}
