package points

import (
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawTarget receives draw commands. Implementations must not retain the
// transforms slice passed to DrawMeshInstanced after the call returns.
type DrawTarget interface {
	DrawMesh(mesh *core.PointMesh, transform mgl32.Mat4, material *core.Material, submesh int)
	DrawMeshInstanced(mesh *core.PointMesh, submesh int, material *core.Material, transforms []mgl32.Mat4)
}

// Request is everything one point cloud draw needs.
type Request struct {
	Config    Config
	Mesh      *core.Mesh
	Object    Object
	PointMesh *core.PointMesh
	Material  *core.Material
	// Camera is the resolved viewing camera, see ResolveCamera.
	Camera *core.Camera
}

// Stats describes the work done by one Draw call.
type Stats struct {
	Points         int
	Chunks         int
	DrawCalls      int
	InstancedCalls int
}

func (s *Stats) Add(other Stats) {
	s.Points += other.Points
	s.Chunks += other.Chunks
	s.DrawCalls += other.DrawCalls
	s.InstancedCalls += other.InstancedCalls
}

// Ready reports whether req has everything required to draw.
func (req *Request) Ready() bool {
	if !req.Config.Draw || req.Mesh == nil || req.PointMesh == nil || req.Material == nil {
		return false
	}
	if req.Config.FaceCamera && req.Camera == nil {
		return false
	}
	return true
}

// Draw emits one billboard per mesh vertex into target, in chunks of at most
// MaxBatchSize. In instanced mode each chunk is one DrawMeshInstanced call;
// otherwise every point is drawn with DrawMesh as soon as it is built.
func Draw(target DrawTarget, req Request) Stats {
	var stats Stats
	if !req.Ready() {
		return stats
	}

	builder := NewBuilder(req.Config, req.Mesh, req.Object, req.Camera)
	batch := NewBatch(min(req.Mesh.VertexCount(), MaxBatchSize))

	ForEachChunk(req.Mesh.VertexCount(), MaxBatchSize, func(c Chunk) {
		for i := c.Start; i < c.End; i++ {
			batch.Append(builder.Transform(i))
			stats.Points++

			if !req.Config.Instance {
				target.DrawMesh(req.PointMesh, batch.Last(), req.Material, 0)
				stats.DrawCalls++
			}
		}

		if req.Config.Instance {
			target.DrawMeshInstanced(req.PointMesh, 0, req.Material, batch.Transforms())
			stats.DrawCalls++
			stats.InstancedCalls++
		}

		stats.Chunks++
		batch.Reset()
	})

	return stats
}
