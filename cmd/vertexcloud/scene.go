package main

import (
	"fmt"
	"math"

	"github.com/gekko3d/vertexcloud"
	"github.com/gekko3d/vertexcloud/internal/config"
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/gekko3d/vertexcloud/render/points"
	"github.com/go-gl/mathgl/mgl32"
)

// setupScene creates the source mesh entity and the camera described by cfg.
func setupScene(app *vertexcloud.App, cfg *config.Config) error {
	assets := vertexcloud.Resource[vertexcloud.AssetServer](app)
	if assets == nil {
		return fmt.Errorf("scene setup: %w", vertexcloud.ErrAssetNotFound)
	}
	log := app.Logger()

	mesh, err := vertexcloud.ProceduralMesh(cfg.Source.Kind, cfg.Source.Params)
	if err != nil {
		return fmt.Errorf("source mesh: %w", err)
	}
	meshId, err := assets.AddMesh(mesh)
	if err != nil {
		return fmt.Errorf("source mesh: %w", err)
	}

	var textureId vertexcloud.AssetId
	if cfg.Sprite.Texture != "" {
		textureId, err = assets.LoadTexture(cfg.Sprite.Texture)
	} else {
		textureId, err = assets.CreateRoundSprite(max(cfg.Sprite.SpriteSize, 1))
	}
	if err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	materialId, err := assets.CreateMaterial("points", cfg.Sprite.Color, textureId)
	if err != nil {
		return fmt.Errorf("sprite material: %w", err)
	}

	cmd := app.Commands()
	cmd.AddEntity(
		vertexcloud.NewTransformComponent(cfg.Object.Position, points.EulerToQuat(cfg.Object.Rotation)),
		vertexcloud.MeshFilterComponent{Mesh: meshId},
		vertexcloud.VertexPointCloudComponent{
			Config:    cfg.Points,
			PointMesh: assets.CreateQuadPointMesh(),
			Material:  materialId,
		},
	)

	camera := core.NewCamera("main")
	camera.Position = cfg.Camera.Position
	camera.LookAt(cfg.Camera.Target)

	cameraComponents := []any{vertexcloud.CameraComponent{Camera: camera, Main: true}}
	if cfg.Camera.Orbit {
		offset := cfg.Camera.Position.Sub(cfg.Camera.Target)
		cameraComponents = append(cameraComponents, vertexcloud.OrbitCameraComponent{
			Target: cfg.Camera.Target,
			Radius: mgl32.Vec2{offset.X(), offset.Z()}.Len(),
			Height: offset.Y(),
			Speed:  cfg.Camera.OrbitSpeed,
			Angle:  float32(math.Atan2(float64(offset.X()), float64(offset.Z()))),
		})
	}
	cmd.AddEntity(cameraComponents...)
	app.FlushCommands()

	log.Infof("Scene ready: %s mesh with %d vertices", cfg.Source.Kind, mesh.VertexCount())
	return nil
}
