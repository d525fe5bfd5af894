package points

import (
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Object is the placement of the mesh owning the points.
type Object struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewObject(position mgl32.Vec3, rotation mgl32.Quat) Object {
	return Object{Position: position, Rotation: rotation}
}

// Builder computes per-vertex point transforms. Values shared by every point
// are computed once in NewBuilder.
type Builder struct {
	mesh         *core.Mesh
	object       Object
	faceCamera   bool
	cameraPos    mgl32.Vec3
	normalOffset float32
	offset       mgl32.Quat
	scale        mgl32.Vec3
}

// NewBuilder prepares a builder for one draw. camera is only read when
// cfg.FaceCamera is set and may be nil otherwise.
func NewBuilder(cfg Config, mesh *core.Mesh, object Object, camera *core.Camera) *Builder {
	b := &Builder{
		mesh:         mesh,
		object:       object,
		faceCamera:   cfg.FaceCamera,
		normalOffset: cfg.NormalOffset,
		offset:       cfg.OffsetRotation(),
		scale:        cfg.ScaleVector(),
	}
	if camera != nil {
		b.cameraPos = camera.Position
	}
	return b
}

// Position returns the world-space position of point i.
func (b *Builder) Position(i int) mgl32.Vec3 {
	rot := b.object.Rotation
	vertex := rot.Rotate(b.mesh.Vertices[i])
	offset := rot.Rotate(safeNormalize(b.mesh.Normal(i)).Mul(b.normalOffset))
	return b.object.Position.Add(vertex).Add(offset)
}

// Rotation returns the orientation of point i placed at position.
func (b *Builder) Rotation(i int, position mgl32.Vec3) mgl32.Quat {
	var rotation mgl32.Quat
	if b.faceCamera {
		rotation = LookRotation(b.cameraPos.Sub(position), core.WorldUp)
	} else {
		rotation = b.object.Rotation.Mul(LookRotation(b.mesh.Normal(i), core.WorldUp))
	}
	return rotation.Mul(b.offset)
}

// Transform returns the TRS matrix of point i.
func (b *Builder) Transform(i int) mgl32.Mat4 {
	position := b.Position(i)
	return core.TRS(position, b.Rotation(i, position), b.scale)
}
