package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const shaderTestSource = `//@oxy:include camera
@group(0) @binding(0) var<uniform> camera: CameraUniform;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec3<f32>,
}

//@oxy:include instance

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) color: vec3<f32>,
}

@vertex
fn vs_main(in: VertexInput, inst: InstanceInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip = camera.projection * camera.view * vec4<f32>(in.position, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

func TestNewShader(t *testing.T) {
	s, err := NewShader("cube", WithSource(shaderTestSource))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}

	if s.Key() != "cube" || s.Module().Label != "cube" {
		t.Errorf("key/label = %q/%q", s.Key(), s.Module().Label)
	}
	if s.Module().WGSLDescriptor == nil || s.Module().WGSLDescriptor.Code != s.Source() {
		t.Error("module code should be the processed source")
	}
	if strings.Contains(s.Source(), "@oxy:") {
		t.Error("includes were not expanded")
	}
	if got := s.EntryPoint(ShaderTypeVertex); got != "vs_main" {
		t.Errorf("vertex entry = %q", got)
	}
	if got := s.EntryPoint(ShaderTypeFragment); got != "fs_main" {
		t.Errorf("fragment entry = %q", got)
	}

	layouts := s.VertexLayouts()
	if len(layouts) != 2 {
		t.Fatalf("got %d vertex layouts, want 2", len(layouts))
	}
	if layouts[0].StepMode != wgpu.VertexStepModeVertex || layouts[0].ArrayStride != 24 {
		t.Errorf("vertex layout = %+v", layouts[0])
	}
	if layouts[1].StepMode != wgpu.VertexStepModeInstance || layouts[1].ArrayStride != 64 {
		t.Errorf("instance layout = %+v", layouts[1])
	}

	groups := s.BindGroupLayoutDescriptors()
	if len(groups) != 1 || groups[0].Entries[0].Buffer.MinBindingSize != 144 {
		t.Errorf("bind groups = %+v", groups)
	}
	if got := s.BindGroupVarName(0, 0); got != "camera" {
		t.Errorf("BindGroupVarName(0, 0) = %q", got)
	}
	if got := s.BindGroupVarName(3, 0); got != "" {
		t.Errorf("BindGroupVarName(3, 0) = %q, want empty", got)
	}
	if g, b, ok := s.BindingFromVarName("camera"); !ok || g != 0 || b != 0 {
		t.Errorf("BindingFromVarName(camera) = %d, %d, %v", g, b, ok)
	}
}

func TestShaderNewUniformBlock(t *testing.T) {
	s, err := NewShader("cube", WithSource(shaderTestSource))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	block, err := s.NewUniformBlock("camera")
	if err != nil {
		t.Fatalf("NewUniformBlock: %v", err)
	}
	if block.Name() != "CameraUniform" || block.Size() != 144 {
		t.Errorf("block = %s (%d bytes)", block.Name(), block.Size())
	}
	if _, err := s.NewUniformBlock("lights"); err == nil {
		t.Error("expected error for an undeclared binding")
	}
}

func TestShaderNewUniformBlockRejectsNonUniform(t *testing.T) {
	src := "@group(0) @binding(0) var<storage, read> data: array<f32>;\n"
	s, err := NewShader("data", WithSource(src))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	if _, err := s.NewUniformBlock("data"); err == nil {
		t.Error("expected error for a storage binding")
	}
}

func TestNewShaderFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.wgsl")
	if err := os.WriteFile(path, []byte(shaderTestSource), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewShader("cube", WithSource("ignored"), WithSourceFromPath(path))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	if s.EntryPoint(ShaderTypeVertex) != "vs_main" {
		t.Error("source file was not used")
	}
}

func TestNewShaderErrors(t *testing.T) {
	if _, err := NewShader("empty"); err == nil {
		t.Error("expected error without a source")
	}
	if _, err := NewShader("missing", WithSourceFromPath(filepath.Join(t.TempDir(), "nope.wgsl"))); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := NewShader("bad", WithSource("//@oxy:include nothing")); err == nil {
		t.Error("expected pre-processor error")
	}
}

func TestNewShaderCustomPreProcessor(t *testing.T) {
	pp := NewPreProcessor()
	pp.Register("tint", "const TINT: vec3<f32> = vec3<f32>(1.0, 0.5, 0.5);")
	s, err := NewShader("tinted", WithSource("//@oxy:include tint\n"), WithPreProcessor(pp))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	if !strings.Contains(s.Source(), "const TINT") {
		t.Errorf("custom include missing from %q", s.Source())
	}
}
