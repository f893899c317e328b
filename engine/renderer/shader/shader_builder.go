package shader

// ShaderBuilderOption is a functional option for configuring a Shader.
type ShaderBuilderOption func(*shader)

// WithSource sets the WGSL source directly, typically from an embedded asset.
//
// Parameters:
//   - source: the WGSL source text
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.source = source
	}
}

// WithSourceFromPath reads the WGSL source from a file when the shader is built.
// It takes precedence over WithSource.
//
// Parameters:
//   - path: path to a .wgsl file
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithSourceFromPath(path string) ShaderBuilderOption {
	return func(s *shader) {
		s.sourcePath = path
	}
}

// WithPreProcessor replaces the default include pre-processor.
//
// Parameters:
//   - pp: the pre-processor to expand includes with
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithPreProcessor(pp PreProcessor) ShaderBuilderOption {
	return func(s *shader) {
		s.pp = pp
	}
}
