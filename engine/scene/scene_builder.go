package scene

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer/shader"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering. Scenes are active by default.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCubes replaces the default ten-cube field.
//
// Parameters:
//   - cubes: the instances to draw
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCubes(cubes ...Cube) SceneBuilderOption {
	return func(s *scene) {
		s.cubes = append([]Cube{}, cubes...)
	}
}

// WithRandomCubes appends count randomly placed, oriented and spinning cubes inside a ball.
// The default field is kept unless WithCubes was applied first.
//
// Parameters:
//   - count: number of cubes to add
//   - radius: radius of the ball around the origin
//   - seed: random seed, so a field can be reproduced
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRandomCubes(count int, radius float32, seed int64) SceneBuilderOption {
	return func(s *scene) {
		if count <= 0 {
			return
		}
		if s.cubes == nil {
			s.cubes = defaultCubes(s.spin)
		}
		s.cubes = append(s.cubes, randomCubes(count, radius, seed)...)
	}
}

// WithSpin sets the rotation rate, in degrees per second, of every third cube in the default field.
// Must be applied before WithRandomCubes to affect the default field it keeps.
//
// Parameters:
//   - degreesPerSecond: the spin rate
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSpin(degreesPerSecond float32) SceneBuilderOption {
	return func(s *scene) {
		s.spin = degreesPerSecond
	}
}

// WithClipPlanes sets the near and far plane distances of the projection.
// Invalid pairs (near <= 0 or far <= near) are ignored.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClipPlanes(near, far float32) SceneBuilderOption {
	return func(s *scene) {
		if near <= 0 || far <= near {
			return
		}
		s.near = near
		s.far = far
	}
}

// WithViewportSize sets the initial aspect ratio from a viewport size.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithViewportSize(width, height int) SceneBuilderOption {
	return func(s *scene) {
		if width > 0 && height > 0 {
			s.aspect = float32(width) / float32(height)
		}
	}
}

// WithShader replaces the built-in cube shader. The shader must declare a CameraUniform named
// "camera" at @group(0) and the VertexInput and InstanceInput vertex layouts.
//
// Parameters:
//   - shdr: the shader to draw cubes with
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShader(shdr shader.Shader) SceneBuilderOption {
	return func(s *scene) {
		s.shdr = shdr
	}
}

// WithPipelineKey overrides the pipeline key, which defaults to "<name>_cubes".
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPipelineKey(key string) SceneBuilderOption {
	return func(s *scene) {
		if key != "" {
			s.pipelineKey = key
		}
	}
}

// WithCullingDisabled disables frustum culling so every instance is drawn.
// By default culling is enabled (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithComputeWorkers sets the number of worker goroutines used to prepare instances.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithBatchSize sets how many instances one pool task prepares.
//
// Parameters:
//   - n: instances per task (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBatchSize(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.batchSize = n
	}
}
