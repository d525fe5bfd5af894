package vertexcloud

import (
	"fmt"
	"math"

	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/go-gl/mathgl/mgl32"
)

// SphereMesh builds a UV sphere with one vertex per pole and
// (rings-1)*segments vertices in between. Normals point outwards.
func SphereMesh(radius float32, rings, segments int) (*core.Mesh, error) {
	if rings < 2 || segments < 3 {
		return nil, fmt.Errorf("sphere needs at least 2 rings and 3 segments, got %d and %d", rings, segments)
	}
	mesh := &core.Mesh{Name: "sphere"}
	add := func(n mgl32.Vec3) {
		mesh.Vertices = append(mesh.Vertices, n.Mul(radius))
		mesh.Normals = append(mesh.Normals, n)
	}

	add(mgl32.Vec3{0, 1, 0})
	for r := 1; r < rings; r++ {
		theta := math.Pi * float64(r) / float64(rings)
		y := float32(math.Cos(theta))
		ringRadius := math.Sin(theta)
		for s := 0; s < segments; s++ {
			phi := 2 * math.Pi * float64(s) / float64(segments)
			add(mgl32.Vec3{
				float32(ringRadius * math.Cos(phi)),
				y,
				float32(ringRadius * math.Sin(phi)),
			})
		}
	}
	add(mgl32.Vec3{0, -1, 0})

	return mesh, nil
}

// PlaneMesh builds a cols x rows grid in the XZ plane centered on the
// origin, with normals facing +Y.
func PlaneMesh(width, depth float32, cols, rows int) (*core.Mesh, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("plane needs at least one column and row, got %dx%d", cols, rows)
	}
	mesh := &core.Mesh{Name: "plane"}
	for z := 0; z < rows; z++ {
		for x := 0; x < cols; x++ {
			u, v := float32(0.5), float32(0.5)
			if cols > 1 {
				u = float32(x) / float32(cols-1)
			}
			if rows > 1 {
				v = float32(z) / float32(rows-1)
			}
			mesh.Vertices = append(mesh.Vertices, mgl32.Vec3{(u - 0.5) * width, 0, (v - 0.5) * depth})
			mesh.Normals = append(mesh.Normals, mgl32.Vec3{0, 1, 0})
		}
	}
	return mesh, nil
}

// CubeMesh builds the 8 corners of a cube; normals point away from the center.
func CubeMesh(size float32) *core.Mesh {
	mesh := &core.Mesh{Name: "cube"}
	h := size / 2
	for _, x := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, z := range []float32{-1, 1} {
				corner := mgl32.Vec3{x, y, z}
				mesh.Vertices = append(mesh.Vertices, corner.Mul(h))
				mesh.Normals = append(mesh.Normals, corner.Normalize())
			}
		}
	}
	return mesh
}

// RoundSpriteTexels returns a size x size RGBA disc with a soft edge.
func RoundSpriteTexels(size int) []uint8 {
	texels := make([]uint8, size*size*4)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / (c + 0.5)
			alpha := mgl32.Clamp(float32((1-d)*4), 0, 1)
			i := (y*size + x) * 4
			texels[i+0] = 255
			texels[i+1] = 255
			texels[i+2] = 255
			texels[i+3] = uint8(alpha * 255)
		}
	}
	return texels
}

func (server *AssetServer) CreateRoundSprite(size int) (AssetId, error) {
	return server.CreateTexture(RoundSpriteTexels(size), uint32(size), uint32(size))
}

func (server *AssetServer) CreateQuadPointMesh() AssetId {
	return server.AddPointMesh(core.NewQuadPointMesh())
}

// ProceduralMesh builds a source mesh by kind: "sphere" (radius, rings,
// segments), "plane" (width, depth, cols, rows) or "cube" (size).
func ProceduralMesh(kind string, params []float32) (*core.Mesh, error) {
	param := func(i int, def float32) float32 {
		if i < len(params) {
			return params[i]
		}
		return def
	}

	switch kind {
	case "sphere":
		return SphereMesh(param(0, 1), int(param(1, 32)), int(param(2, 64)))
	case "plane":
		return PlaneMesh(param(0, 10), param(1, 10), int(param(2, 50)), int(param(3, 50)))
	case "cube":
		return CubeMesh(param(0, 1)), nil
	default:
		return nil, fmt.Errorf("unknown procedural mesh %q", kind)
	}
}
