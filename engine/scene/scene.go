package scene

import (
	_ "embed"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer/shader"
)

//go:embed assets/cube.wgsl
var cubeShaderSource string

// Field names of the CameraUniform struct the scene writes every frame.
const (
	UniformView       = "view"
	UniformProjection = "projection"
	UniformViewPos    = "viewPos"
	UniformTime       = "time"
)

// cameraVarName is the uniform variable the scene's shader must declare at @group(0).
const cameraVarName = "camera"

// instanceSlot is the vertex buffer slot carrying per-instance model matrices.
const instanceSlot = 1

// Default clip planes and viewport used when no option overrides them.
const (
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Scene owns a field of cube instances, the camera that views them and the GPU resources
// that draw them. Each frame Prepare computes instance matrices, culls them against the
// camera frustum and uploads the camera uniform; DrawCalls then encodes one instanced draw.
// Thread-safe for concurrent access, though the camera itself is not.
type Scene interface {
	// Name returns the scene name, used for resource labels and errors.
	Name() string

	// Active reports whether the engine renders this scene.
	Active() bool

	// SetActive enables or disables rendering of this scene.
	//
	// Parameters:
	//   - active: whether the scene is active
	SetActive(active bool)

	// Camera returns the camera the scene is viewed through.
	Camera() camera.Camera

	// Renderer returns the renderer the scene draws with.
	Renderer() renderer.Renderer

	// Uniforms returns the camera uniform block written each frame.
	Uniforms() shader.UniformBlock

	// Cubes returns a copy of the cube instances.
	Cubes() []Cube

	// Count returns the number of cube instances.
	Count() int

	// VisibleCount returns how many instances survived culling in the last Prepare.
	VisibleCount() int

	// Time returns the accumulated scene time in seconds.
	Time() float32

	// CullingDisabled reports whether frustum culling is skipped.
	CullingDisabled() bool

	// SetCullingDisabled turns frustum culling off or on.
	//
	// Parameters:
	//   - disabled: true to draw every instance
	SetCullingDisabled(disabled bool)

	// Resize updates the projection aspect ratio. Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Resize(width, height int)

	// Prepare advances scene time and stages the frame: instance matrices are computed on the
	// worker pool, culled against the view frustum and uploaded along with the camera uniform.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - error: if the camera view cannot be inverted or an upload fails
	Prepare(deltaTime float32) error

	// DrawCalls encodes the instanced cube draw into the current render pass.
	// Must be called between the renderer's BeginFrame and EndFrame.
	//
	// Returns:
	//   - error: if the draw call fails
	DrawCalls() error

	// Release stops the worker pool and releases the scene's GPU resources.
	Release()
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam camera.Camera
	r   renderer.Renderer

	shdr        shader.Shader
	pipelineKey string
	uniforms    shader.UniformBlock
	cameraBGP   bind_group_provider.BindGroupProvider
	meshBGP     bind_group_provider.BindGroupProvider

	cubes           []Cube
	spin            float32
	near            float32
	far             float32
	aspect          float32
	elapsed         float32
	cullingDisabled bool

	// Per-frame scratch reused across frames to avoid allocations.
	models       []common.Mat4
	visible      []bool
	instanceData []common.Mat4
	writePool    []bind_group_provider.BufferWrite
	drawGroups   []bind_group_provider.BindGroupProvider

	// computePool runs the instance preparation batches. Workers persist across frames.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
	batchSize      int
}

var _ Scene = &scene{}

// NewScene creates a Scene drawing a cube field through cam with r.
// The cube shader is parsed, its pipeline registered, the cube mesh uploaded and the camera
// bind group created. NewScene panics if cam or r is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to view the scene through (must not be nil)
//   - r: the renderer to draw with (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: if the shader, pipeline or GPU resources cannot be created
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) (Scene, error) {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         true,
		cam:            cam,
		r:              r,
		pipelineKey:    name + "_cubes",
		near:           DefaultNear,
		far:            DefaultFar,
		aspect:         800.0 / 600.0,
		computeWorkers: max(runtime.NumCPU()-1, 1),
		batchSize:      256,
		drawGroups:     make([]bind_group_provider.BindGroupProvider, 0, 1),
		writePool:      make([]bind_group_provider.BufferWrite, 0, 1),
	}
	for _, option := range options {
		option(s)
	}
	if s.cubes == nil {
		s.cubes = defaultCubes(s.spin)
	}

	if s.shdr == nil {
		shdr, err := shader.NewShader(s.pipelineKey, shader.WithSource(cubeShaderSource))
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
		s.shdr = shdr
	}

	group, _, ok := s.shdr.BindingFromVarName(cameraVarName)
	if !ok || group != 0 {
		return nil, fmt.Errorf("scene %q: shader must declare the %q uniform at @group(0)", name, cameraVarName)
	}
	uniforms, err := s.shdr.NewUniformBlock(cameraVarName)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	s.uniforms = uniforms

	p := pipeline.NewPipeline(s.pipelineKey, pipeline.WithShader(s.shdr))
	if err := r.RegisterPipelines(p); err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	s.meshBGP = bind_group_provider.NewBindGroupProvider(name + " Cube Mesh")
	if err := r.InitMeshBuffers(s.meshBGP, common.SliceToBytes(cubeVertices()), CubeVertexCount); err != nil {
		return nil, fmt.Errorf("scene %q: failed to upload cube mesh: %w", name, err)
	}

	s.cameraBGP = bind_group_provider.NewBindGroupProvider(name + " Camera")
	if err := r.InitBindGroup(s.cameraBGP, s.pipelineKey, group); err != nil {
		return nil, fmt.Errorf("scene %q: failed to init camera bind group: %w", name, err)
	}

	s.models = make([]common.Mat4, len(s.cubes))
	s.visible = make([]bool, len(s.cubes))
	s.instanceData = make([]common.Mat4, 0, len(s.cubes))

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)

	return s, nil
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Uniforms() shader.UniformBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uniforms
}

func (s *scene) Cubes() []Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Cube, len(s.cubes))
	copy(out, s.cubes)
	return out
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cubes)
}

func (s *scene) VisibleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instanceData)
}

func (s *scene) Time() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aspect = float32(width) / float32(height)
}

func (s *scene) Prepare(deltaTime float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.elapsed += deltaTime

	// The camera matrix is the camera's frame in world space; the shader needs world-to-view.
	view, ok := s.cam.ViewMatrix().Inverse()
	if !ok {
		return fmt.Errorf("scene %q: camera view matrix is singular", s.name)
	}
	projection := s.cam.ProjectionMatrix(s.aspect, s.near, s.far)

	if err := s.writeUniforms(view, projection); err != nil {
		return err
	}

	frustum := common.ExtractFrustum(projection.Mul(view), s.cam.ClipSpace())
	s.prepareInstances(frustum)

	if s.uniforms.Dirty() {
		s.writePool = append(s.writePool[:0], bind_group_provider.BufferWrite{
			Provider: s.cameraBGP,
			Binding:  0,
			Offset:   0,
			Data:     s.uniforms.Bytes(),
		})
		s.r.WriteBuffers(s.writePool)
		s.uniforms.ClearDirty()
	}

	if len(s.instanceData) == 0 {
		return nil
	}
	if err := s.r.WriteVertexBuffer(s.meshBGP, instanceSlot, common.SliceToBytes(s.instanceData)); err != nil {
		return fmt.Errorf("scene %q: failed to upload instances: %w", s.name, err)
	}
	return nil
}

// writeUniforms fills the camera uniform block for this frame.
func (s *scene) writeUniforms(view, projection common.Mat4) error {
	if err := s.uniforms.SetMat4(UniformView, view); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}
	if err := s.uniforms.SetMat4(UniformProjection, projection); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}
	if err := s.uniforms.SetVec3(UniformViewPos, s.cam.Position()); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}
	if err := s.uniforms.SetFloat(UniformTime, s.elapsed); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}
	return nil
}

// prepareInstances computes every model matrix and its visibility in parallel batches on the
// compute pool, then packs the visible matrices in instance order.
func (s *scene) prepareInstances(frustum common.Frustum) {
	t := s.elapsed
	cull := !s.cullingDisabled

	// A WaitGroup provides the per-frame barrier since pool.Wait() blocks until
	// workers idle-exit which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(s.cubes); start += s.batchSize {
		end := min(start+s.batchSize, len(s.cubes))
		wg.Add(1)
		lo, hi := start, end
		s.computePool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					c := s.cubes[i]
					s.models[i] = c.Model(t)
					s.visible[i] = !cull || frustum.IntersectsSphere(c.Position, CubeBoundingRadius)
				}
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()

	s.instanceData = s.instanceData[:0]
	for i, m := range s.models {
		if s.visible[i] {
			s.instanceData = append(s.instanceData, m)
		}
	}
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.instanceData) == 0 {
		return nil
	}
	s.drawGroups = append(s.drawGroups[:0], s.cameraBGP)
	if err := s.r.DrawCall(s.pipelineKey, s.meshBGP, uint32(len(s.instanceData)), s.drawGroups); err != nil {
		return fmt.Errorf("draw call failed in scene %q: %w", s.name, err)
	}
	return nil
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.computePool != nil {
		s.computePool.Stop()
		s.computePool = nil
	}
	if s.meshBGP != nil {
		s.meshBGP.Release()
	}
	if s.cameraBGP != nil {
		s.cameraBGP.Release()
	}
}
