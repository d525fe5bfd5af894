package vertexcloud

import (
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/gekko3d/vertexcloud/render/points"
	"github.com/go-gl/mathgl/mgl32"
)

type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransformComponent(position mgl32.Vec3, rotation mgl32.Quat) TransformComponent {
	return TransformComponent{
		Position: position,
		Rotation: rotation,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// MeshFilterComponent references the source mesh whose vertices become points.
type MeshFilterComponent struct {
	Mesh AssetId
}

// CameraComponent holds a camera by pointer so systems can keep references
// across archetype moves.
type CameraComponent struct {
	Camera *core.Camera
	Main   bool
}

// VertexPointCloudComponent draws one billboard per vertex of the entity's
// MeshFilterComponent mesh.
type VertexPointCloudComponent struct {
	Config    points.Config
	PointMesh AssetId
	Material  AssetId
}
