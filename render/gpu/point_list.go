package gpu

import (
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/go-gl/mathgl/mgl32"
)

// PointInstance matches the WGSL InstanceInput. Size: 80 bytes.
type PointInstance struct {
	Model mgl32.Mat4 // offset  0: columns at locations 2-5
	Color [4]float32 // offset 64: location 6
}

// PointDraw is one recorded draw over a contiguous instance range.
type PointDraw struct {
	Mesh          *core.PointMesh
	Texture       *core.Texture
	FirstInstance uint32
	InstanceCount uint32
}

// PointList collects the instances and draws of one frame. It implements
// points.DrawTarget.
type PointList struct {
	Instances []PointInstance
	Draws     []PointDraw
}

func (l *PointList) DrawMesh(mesh *core.PointMesh, transform mgl32.Mat4, material *core.Material, submesh int) {
	l.record(mesh, material, []mgl32.Mat4{transform})
}

func (l *PointList) DrawMeshInstanced(mesh *core.PointMesh, submesh int, material *core.Material, transforms []mgl32.Mat4) {
	l.record(mesh, material, transforms)
}

func (l *PointList) record(mesh *core.PointMesh, material *core.Material, transforms []mgl32.Mat4) {
	if mesh == nil || len(transforms) == 0 {
		return
	}

	color := [4]float32{1, 1, 1, 1}
	var texture *core.Texture
	if material != nil {
		color = material.Color
		texture = material.Texture
	}

	first := uint32(len(l.Instances))
	for _, t := range transforms {
		l.Instances = append(l.Instances, PointInstance{Model: t, Color: color})
	}
	l.Draws = append(l.Draws, PointDraw{
		Mesh:          mesh,
		Texture:       texture,
		FirstInstance: first,
		InstanceCount: uint32(len(transforms)),
	})
}

func (l *PointList) Reset() {
	l.Instances = l.Instances[:0]
	l.Draws = l.Draws[:0]
}
