package shader

import (
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies a programmable pipeline stage.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds all of the persistent shader data required for pipeline creation.
type shader struct {
	key           string
	source        string
	sourcePath    string
	vertexEntry   string
	fragmentEntry string
	bindGroups    map[int]wgpu.BindGroupLayoutDescriptor
	bindings      map[int]map[int]bindingDecl
	vertexLayouts []wgpu.VertexBufferLayout
	module        *wgpu.ShaderModuleDescriptor
	pp            PreProcessor
}

// Shader is a loaded and parsed WGSL module holding a vertex and a fragment entry point.
// Vertex buffer layouts and bind group layouts are derived from the source so the renderer does
// not have to restate them.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used as the module label.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed WGSL source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for a stage, or "" if the source declares none.
	//
	// Parameters:
	//   - stage: ShaderTypeVertex or ShaderTypeFragment
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint(stage ShaderType) string

	// VertexLayouts retrieves the vertex buffer layouts in slot order.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one layout per vertex buffer slot
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptors retrieves all parsed bind group layout descriptors keyed by group index.
	// Entries are visible to both the vertex and fragment stage.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName retrieves the variable name for a given group and binding index, if it exists.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - string: the variable name, or an empty string if not found
	BindGroupVarName(group, binding int) string

	// BindingFromVarName finds the group and binding of a resource variable.
	//
	// Parameters:
	//   - varName: the variable name in the WGSL source
	//
	// Returns:
	//   - group, binding: the location of the variable
	//   - bool: false if no binding declares varName
	BindingFromVarName(varName string) (group, binding int, ok bool)

	// NewUniformBlock creates a UniformBlock laid out like the struct behind a var<uniform> variable.
	//
	// Parameters:
	//   - varName: the uniform variable name, e.g. "camera"
	//
	// Returns:
	//   - UniformBlock: a zeroed block matching the shader's layout
	//   - error: if varName is not a uniform binding or its struct cannot be laid out
	NewUniformBlock(varName string) (UniformBlock, error)

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader creates a new Shader from WGSL source supplied through WithSource or WithSourceFromPath.
// Include annotations are expanded before parsing.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - options: functional options providing the source and pre-processor
//
// Returns:
//   - Shader: the parsed shader
//   - error: if no source was given, the file cannot be read, or pre-processing fails
func NewShader(key string, options ...ShaderBuilderOption) (Shader, error) {
	s := &shader{
		key: key,
		pp:  NewPreProcessor(),
	}
	for _, option := range options {
		option(s)
	}

	if s.sourcePath != "" {
		data, err := os.ReadFile(s.sourcePath)
		if err != nil {
			return nil, fmt.Errorf("shader %s: failed to read source file %q: %w", key, s.sourcePath, err)
		}
		s.source = string(data)
	}
	if s.source == "" {
		return nil, fmt.Errorf("shader %s: no source provided", key)
	}

	if err := s.parseSource(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint(stage ShaderType) string {
	switch stage {
	case ShaderTypeVertex:
		return s.vertexEntry
	case ShaderTypeFragment:
		return s.fragmentEntry
	default:
		return ""
	}
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroups
}

func (s *shader) BindGroupVarName(group, binding int) string {
	if s.bindings[group] == nil {
		return ""
	}
	return s.bindings[group][binding].varName
}

func (s *shader) BindingFromVarName(varName string) (int, int, bool) {
	for group, byBinding := range s.bindings {
		for binding, d := range byBinding {
			if d.varName == varName {
				return group, binding, true
			}
		}
	}
	return -1, -1, false
}

func (s *shader) NewUniformBlock(varName string) (UniformBlock, error) {
	group, binding, ok := s.BindingFromVarName(varName)
	if !ok {
		return nil, fmt.Errorf("shader %s: no binding named %q", s.key, varName)
	}
	d := s.bindings[group][binding]
	if d.addressSpace != "uniform" {
		return nil, fmt.Errorf("shader %s: %q is not a uniform binding", s.key, varName)
	}
	block, err := NewUniformBlockFromSource(s.source, d.typeName)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", s.key, err)
	}
	return block, nil
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

// parseSource pre-processes the WGSL source, builds the shader module descriptor, and
// extracts entry points, vertex layouts and bind group layouts.
func (s *shader) parseSource() error {
	processed, err := s.pp.Process(s.source)
	if err != nil {
		return fmt.Errorf("shader %s: failed to pre-process source: %w", s.key, err)
	}
	s.source = processed

	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	s.vertexEntry = parseEntryPoint(s.source, ShaderTypeVertex)
	s.fragmentEntry = parseEntryPoint(s.source, ShaderTypeFragment)
	s.vertexLayouts = parseVertexLayouts(s.source)
	s.bindGroups, s.bindings = parseBindGroupLayouts(s.source, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment)
	return nil
}
