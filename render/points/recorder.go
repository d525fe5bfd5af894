package points

import (
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawCall is one command captured by a Recorder.
type DrawCall struct {
	Instanced  bool
	Mesh       *core.PointMesh
	Material   *core.Material
	Submesh    int
	Transforms []mgl32.Mat4
}

// Recorder is a DrawTarget that keeps every command it receives. It backs
// the headless renderer and tests.
type Recorder struct {
	Calls []DrawCall
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawMesh(mesh *core.PointMesh, transform mgl32.Mat4, material *core.Material, submesh int) {
	r.Calls = append(r.Calls, DrawCall{
		Mesh:       mesh,
		Material:   material,
		Submesh:    submesh,
		Transforms: []mgl32.Mat4{transform},
	})
}

func (r *Recorder) DrawMeshInstanced(mesh *core.PointMesh, submesh int, material *core.Material, transforms []mgl32.Mat4) {
	r.Calls = append(r.Calls, DrawCall{
		Instanced:  true,
		Mesh:       mesh,
		Material:   material,
		Submesh:    submesh,
		Transforms: append([]mgl32.Mat4(nil), transforms...),
	})
}

// Transforms flattens the transforms of all recorded calls in order.
func (r *Recorder) Transforms() []mgl32.Mat4 {
	var res []mgl32.Mat4
	for _, c := range r.Calls {
		res = append(res, c.Transforms...)
	}
	return res
}

func (r *Recorder) InstancedCalls() int {
	n := 0
	for _, c := range r.Calls {
		if c.Instanced {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
