package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const parserTestSource = `
/* block /* nested */ comment */
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec3<f32>,
}

struct InstanceInput {
    @location(4) model0: vec4<f32>,
    @location(5) model1: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) color: vec3<f32>,
}

struct Lights {
    colors: array<vec4<f32>, 4>,
    count: u32,
}

@group(0) @binding(0) var<uniform> lights: Lights;
@group(1) @binding(1) var tex: texture_2d<f32>;
@group(1) @binding(0) var samp: sampler;
@group(2) @binding(0) var<storage, read> data: array<f32>;

// @vertex fn commented_out() {}
@vertex
fn vs_main(in: VertexInput) -> VertexOutput { var out: VertexOutput; return out; }

@fragment fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> { return vec4<f32>(in.color, 1.0); }
`

func TestParseVertexLayouts(t *testing.T) {
	layouts := parseVertexLayouts(parserTestSource)
	if len(layouts) != 2 {
		t.Fatalf("got %d layouts, want 2", len(layouts))
	}

	v := layouts[0]
	if v.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("VertexInput step mode = %v, want vertex", v.StepMode)
	}
	if v.ArrayStride != 24 {
		t.Errorf("VertexInput stride = %d, want 24", v.ArrayStride)
	}
	if len(v.Attributes) != 2 || v.Attributes[1].Offset != 12 || v.Attributes[1].ShaderLocation != 1 {
		t.Errorf("VertexInput attributes = %+v", v.Attributes)
	}

	inst := layouts[1]
	if inst.StepMode != wgpu.VertexStepModeInstance {
		t.Errorf("InstanceInput step mode = %v, want instance", inst.StepMode)
	}
	if inst.ArrayStride != 32 {
		t.Errorf("InstanceInput stride = %d, want 32", inst.ArrayStride)
	}
	if inst.Attributes[0].Format != wgpu.VertexFormatFloat32x4 || inst.Attributes[0].ShaderLocation != 4 {
		t.Errorf("InstanceInput first attribute = %+v", inst.Attributes[0])
	}
}

func TestParseBindGroupLayouts(t *testing.T) {
	vis := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	groups, decls := parseBindGroupLayouts(parserTestSource, vis)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	lights := groups[0].Entries[0]
	if lights.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("lights buffer type = %v", lights.Buffer.Type)
	}
	// array<vec4<f32>, 4> is 64 bytes, count lands at 64 and the struct rounds to 80.
	if lights.Buffer.MinBindingSize != 80 {
		t.Errorf("lights MinBindingSize = %d, want 80", lights.Buffer.MinBindingSize)
	}
	if lights.Visibility != vis {
		t.Errorf("lights visibility = %v", lights.Visibility)
	}

	g1 := groups[1].Entries
	if len(g1) != 2 || g1[0].Binding != 0 || g1[1].Binding != 1 {
		t.Fatalf("group 1 entries not sorted by binding: %+v", g1)
	}
	if g1[0].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Errorf("sampler type = %v", g1[0].Sampler.Type)
	}
	if g1[1].Texture.ViewDimension != wgpu.TextureViewDimension2D {
		t.Errorf("texture dimension = %v", g1[1].Texture.ViewDimension)
	}

	if groups[2].Entries[0].Buffer.Type != wgpu.BufferBindingTypeReadOnlyStorage {
		t.Errorf("storage buffer type = %v", groups[2].Entries[0].Buffer.Type)
	}
	if decls[1][1].varName != "tex" || decls[0][0].typeName != "Lights" {
		t.Errorf("decls = %+v", decls)
	}
}

func TestParseEntryPoint(t *testing.T) {
	if got := parseEntryPoint(parserTestSource, ShaderTypeVertex); got != "vs_main" {
		t.Errorf("vertex entry = %q, want vs_main", got)
	}
	if got := parseEntryPoint(parserTestSource, ShaderTypeFragment); got != "fs_main" {
		t.Errorf("fragment entry = %q, want fs_main", got)
	}
	if got := parseEntryPoint("fn helper() {}", ShaderTypeVertex); got != "" {
		t.Errorf("entry without annotation = %q", got)
	}
}

func TestResolveTypeLayout(t *testing.T) {
	known := map[string]wgslTypeLayout{"Light": {32, 16}}
	tests := []struct {
		typeName string
		want     wgslTypeLayout
		ok       bool
	}{
		{"f32", wgslTypeLayout{4, 4}, true},
		{"vec3<f32>", wgslTypeLayout{12, 16}, true},
		{"mat4x4<f32>", wgslTypeLayout{64, 16}, true},
		{"array<vec3<f32>, 3>", wgslTypeLayout{48, 16}, true},
		{"array<Light, 2>", wgslTypeLayout{64, 16}, true},
		{"array<f32>", wgslTypeLayout{}, false},
		{"Unknown", wgslTypeLayout{}, false},
	}
	for _, tt := range tests {
		got, ok := resolveTypeLayout(tt.typeName, known)
		if ok != tt.ok || got != tt.want {
			t.Errorf("resolveTypeLayout(%q) = %v, %v; want %v, %v", tt.typeName, got, ok, tt.want, tt.ok)
		}
	}
}

func TestComputeStructSizesNested(t *testing.T) {
	src := `
struct Outer { inner: Inner, scale: f32, }
struct Inner { a: vec3<f32>, b: f32, }
`
	sizes := computeStructSizes(parseStructBlocks(src))
	if got := sizes["Inner"]; got != (wgslTypeLayout{16, 16}) {
		t.Errorf("Inner = %v, want {16 16}", got)
	}
	if got := sizes["Outer"]; got != (wgslTypeLayout{32, 16}) {
		t.Errorf("Outer = %v, want {32 16}", got)
	}
}

func TestRoundUpAlign(t *testing.T) {
	tests := []struct{ align, value, want uint64 }{
		{16, 0, 0},
		{16, 1, 16},
		{16, 16, 16},
		{4, 13, 16},
		{0, 7, 7},
	}
	for _, tt := range tests {
		if got := roundUpAlign(tt.align, tt.value); got != tt.want {
			t.Errorf("roundUpAlign(%d, %d) = %d, want %d", tt.align, tt.value, got, tt.want)
		}
	}
}
