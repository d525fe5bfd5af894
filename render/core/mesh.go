package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is the source geometry whose vertices become points.
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
}

func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// Normal returns the normal of vertex i, or the zero vector when the mesh
// carries no normal for it.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	if i < len(m.Normals) {
		return m.Normals[i]
	}
	return mgl32.Vec3{}
}

func (m *Mesh) Validate() error {
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("mesh %q: %d normals for %d vertices", m.Name, len(m.Normals), len(m.Vertices))
	}
	return nil
}

// PointVertex matches the WGSL vertex input of the point shader.
type PointVertex struct {
	Pos [3]float32
	UV  [2]float32
}

// PointMesh is the primitive drawn once per point, as a triangle list.
type PointMesh struct {
	Name     string
	Vertices []PointVertex
}

func (m *PointMesh) VertexCount() uint32 {
	return uint32(len(m.Vertices))
}

// NewQuadPointMesh returns a unit quad in the XY plane facing +Z.
func NewQuadPointMesh() *PointMesh {
	min, max := float32(-0.5), float32(0.5)
	return &PointMesh{
		Name: "quad",
		Vertices: []PointVertex{
			{Pos: [3]float32{min, min, 0}, UV: [2]float32{0, 1}},
			{Pos: [3]float32{max, min, 0}, UV: [2]float32{1, 1}},
			{Pos: [3]float32{max, max, 0}, UV: [2]float32{1, 0}},
			{Pos: [3]float32{min, min, 0}, UV: [2]float32{0, 1}},
			{Pos: [3]float32{max, max, 0}, UV: [2]float32{1, 0}},
			{Pos: [3]float32{min, max, 0}, UV: [2]float32{0, 0}},
		},
	}
}
