package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("cubes")
	if p.PipelineKey() != "cubes" {
		t.Errorf("PipelineKey() = %q", p.PipelineKey())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default to enabled")
	}
	if p.BlendEnabled() {
		t.Error("blending should default to disabled")
	}
	if p.CullMode() != wgpu.CullModeNone {
		t.Errorf("CullMode() = %v", p.CullMode())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("Topology() = %v", p.Topology())
	}
	if p.FrontFace() != wgpu.FrontFaceCCW {
		t.Errorf("FrontFace() = %v", p.FrontFace())
	}
	if p.BlendState() == nil {
		t.Error("BlendState() should have a default")
	}
	if p.RenderPipeline() != nil || p.BindGroupLayout(0) != nil || p.Shader() != nil {
		t.Error("unregistered pipeline should hold no GPU objects or shader")
	}
}

func TestPipelineOptions(t *testing.T) {
	s, err := shader.NewShader("flat", shader.WithSource("@vertex fn vs() {}\n@fragment fn fs() {}\n"))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	p := NewPipeline("lines",
		WithShader(s),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed),
		WithBlendState(nil),
	)
	if p.Shader() != s {
		t.Error("WithShader not applied")
	}
	if p.DepthTestEnabled() || p.DepthWriteEnabled() {
		t.Error("depth options not applied")
	}
	if !p.BlendEnabled() || p.BlendState() != nil {
		t.Error("blend options not applied")
	}
	if p.CullMode() != wgpu.CullModeBack || p.Topology() != wgpu.PrimitiveTopologyLineList {
		t.Error("cull/topology options not applied")
	}
	if p.FrontFace() != wgpu.FrontFaceCW || p.WriteMask() != wgpu.ColorWriteMaskRed {
		t.Error("front face/write mask options not applied")
	}
}

func TestPipelineReleaseWithoutGPU(t *testing.T) {
	p := NewPipeline("empty")
	p.SetRenderPipeline(nil, []*wgpu.BindGroupLayout{nil})
	p.Release()
	if p.BindGroupLayout(0) != nil {
		t.Error("layouts should be cleared")
	}
}
