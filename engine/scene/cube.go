package scene

import (
	"math/rand"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/chewxy/math32"
)

// CubeVertexCount is the number of vertices in the unit cube mesh (6 faces, 2 triangles each).
const CubeVertexCount = 36

// CubeBoundingRadius is the radius of the sphere enclosing the unit cube centered on the origin.
var CubeBoundingRadius = math32.Sqrt(3) / 2

// cubeVertex is one interleaved mesh vertex matching VertexInput in cube.wgsl.
type cubeVertex struct {
	position common.Vec3
	color    common.Vec3
}

// cubeFaceColors tints each face so orientation is readable without textures.
var cubeFaceColors = [6]common.Vec3{
	{0.93, 0.36, 0.33}, // back
	{0.36, 0.77, 0.45}, // front
	{0.31, 0.56, 0.93}, // left
	{0.96, 0.78, 0.32}, // right
	{0.62, 0.45, 0.86}, // bottom
	{0.33, 0.82, 0.84}, // top
}

// cubeCorners lists the 36 unit cube positions face by face, two triangles per face.
var cubeCorners = [CubeVertexCount]common.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5},
	{0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5},

	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},
	{0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5},

	{-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5},
	{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5},

	{0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},

	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5},

	{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
	{0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
}

// cubeVertices builds the interleaved position/color mesh.
func cubeVertices() []cubeVertex {
	verts := make([]cubeVertex, CubeVertexCount)
	for i, p := range cubeCorners {
		verts[i] = cubeVertex{position: p, color: cubeFaceColors[i/6]}
	}
	return verts
}

// CubeRotationAxis is the axis every cube in the default field is tilted about.
var CubeRotationAxis = common.Vec3{1, 0.3, 0.5}

// DefaultCubePositions is the classic ten-cube field laid out in front of a camera at (0, 0, 3).
var DefaultCubePositions = []common.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// Cube is one instance of the cube mesh. Its model matrix is Translate(Position) followed by a
// rotation of Angle + Spin*time degrees about Axis.
type Cube struct {
	Position common.Vec3
	Axis     common.Vec3
	// Angle is the resting rotation in degrees.
	Angle float32
	// Spin is the rotation rate in degrees per second.
	Spin float32
}

// Model returns the cube's model matrix at time t seconds.
//
// Parameters:
//   - t: scene time in seconds
//
// Returns:
//   - common.Mat4: the model matrix
func (c Cube) Model(t float32) common.Mat4 {
	return common.Identity().
		Translate(c.Position).
		AxisRotate(c.Axis, common.Radians(c.Angle+c.Spin*t))
}

// defaultCubes tilts cube i by 20*i degrees about CubeRotationAxis.
func defaultCubes(spin float32) []Cube {
	cubes := make([]Cube, len(DefaultCubePositions))
	for i, p := range DefaultCubePositions {
		cubes[i] = Cube{Position: p, Axis: CubeRotationAxis, Angle: 20 * float32(i)}
		// Every third cube spins so motion is visible even with a still camera.
		if i%3 == 0 {
			cubes[i].Spin = spin
		}
	}
	return cubes
}

// randomCubes scatters count cubes uniformly through a ball of the given radius.
func randomCubes(count int, radius float32, seed int64) []Cube {
	rng := rand.New(rand.NewSource(seed))
	cubes := make([]Cube, count)
	for i := range cubes {
		// Cube root keeps the density uniform through the volume.
		dist := radius * math32.Cbrt(rng.Float32())
		cubes[i] = Cube{
			Position: common.RandomVec3(rng, dist),
			Axis:     common.RandomVec3(rng, 1),
			Angle:    rng.Float32() * 360,
			Spin:     rng.Float32()*60 - 30,
		}
	}
	return cubes
}
