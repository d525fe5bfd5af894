package points

import (
	"testing"

	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_PositionAppliesObjectRotationAndNormalOffset(t *testing.T) {
	mesh := &core.Mesh{
		Vertices: []mgl32.Vec3{{1, 0, 0}},
		Normals:  []mgl32.Vec3{{0, 0, 2}},
	}
	cfg := DefaultConfig()
	cfg.NormalOffset = 0.5
	object := NewObject(mgl32.Vec3{10, 0, 0}, mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))

	b := NewBuilder(cfg, mesh, object, nil)

	assertVec3InDelta(t, mgl32.Vec3{10.5, 0, -1}, b.Position(0))
}

func TestBuilder_ScaleIsPerAxisTimesGlobal(t *testing.T) {
	mesh := makeLineMesh(1)
	cfg := DefaultConfig()
	cfg.FaceCamera = false
	cfg.GlobalScale = 0.5
	cfg.Scale = mgl32.Vec3{1, 2, 4}

	m := NewBuilder(cfg, mesh, NewObject(mgl32.Vec3{}, mgl32.QuatIdent()), nil).Transform(0)

	assert.InDelta(t, 0.5, m.Col(0).Vec3().Len(), eps)
	assert.InDelta(t, 1.0, m.Col(1).Vec3().Len(), eps)
	assert.InDelta(t, 2.0, m.Col(2).Vec3().Len(), eps)
}

func TestBuilder_FaceCameraPointsForwardAtCamera(t *testing.T) {
	mesh := &core.Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {3, 1, -2}, {-4, 2, 5}},
		Normals:  []mgl32.Vec3{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
	}
	camera := core.NewCamera("main")
	camera.Position = mgl32.Vec3{2, 5, 12}
	cfg := DefaultConfig()

	b := NewBuilder(cfg, mesh, NewObject(mgl32.Vec3{1, 0, 0}, mgl32.QuatIdent()), camera)

	for i := range mesh.Vertices {
		m := b.Transform(i)
		position := m.Col(3).Vec3()
		forward := m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize()
		assertVec3InDelta(t, camera.Position.Sub(position).Normalize(), forward, "vertex %d", i)
	}
}

func TestBuilder_NormalAlignedUsesObjectRotation(t *testing.T) {
	mesh := &core.Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}},
		Normals:  []mgl32.Vec3{{0, 0, 1}},
	}
	cfg := DefaultConfig()
	cfg.FaceCamera = false
	object := NewObject(mgl32.Vec3{}, mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))

	b := NewBuilder(cfg, mesh, object, nil)
	q := b.Rotation(0, b.Position(0))

	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, q.Rotate(mgl32.Vec3{0, 0, 1}))
}

func TestBuilder_RotationOffsetAppliedLast(t *testing.T) {
	mesh := &core.Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}},
		Normals:  []mgl32.Vec3{{1, 0, 0}},
	}
	cfg := DefaultConfig()
	cfg.FaceCamera = false
	cfg.RotationOffset = mgl32.Vec3{0, 0, 90}

	b := NewBuilder(cfg, mesh, NewObject(mgl32.Vec3{}, mgl32.QuatIdent()), nil)
	q := b.Rotation(0, b.Position(0))

	// The offset spins the sprite about its own forward axis.
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, q.Rotate(mgl32.Vec3{0, 0, 1}))
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, q.Rotate(mgl32.Vec3{0, 1, 0}))
}

func TestBuilder_CameraAtPointFallsBackToIdentity(t *testing.T) {
	mesh := &core.Mesh{
		Vertices: []mgl32.Vec3{{1, 2, 3}},
		Normals:  []mgl32.Vec3{{0, 1, 0}},
	}
	camera := core.NewCamera("main")
	camera.Position = mgl32.Vec3{1, 2, 3}
	cfg := DefaultConfig()

	m := NewBuilder(cfg, mesh, NewObject(mgl32.Vec3{}, mgl32.QuatIdent()), camera).Transform(0)

	assertNoNaN(t, m)
	expected := core.TRS(mgl32.Vec3{1, 2, 3}, mgl32.QuatIdent(), cfg.ScaleVector())
	assert.True(t, expected.ApproxEqual(m), "expected %v, got %v", expected, m)
}

func TestBuilder_ZeroNormal(t *testing.T) {
	mesh := &core.Mesh{
		Vertices: []mgl32.Vec3{{1, 0, 0}, {2, 0, 0}},
		Normals:  []mgl32.Vec3{{0, 0, 0}},
	}
	cfg := DefaultConfig()
	cfg.FaceCamera = false
	cfg.NormalOffset = 1

	b := NewBuilder(cfg, mesh, NewObject(mgl32.Vec3{}, mgl32.QuatIdent()), nil)

	for i := range mesh.Vertices {
		m := b.Transform(i)
		assertNoNaN(t, m)
		assertVec3InDelta(t, mesh.Vertices[i], m.Col(3).Vec3())
		assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize())
	}
}
