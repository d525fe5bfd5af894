package vertexcloud

import (
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/gekko3d/vertexcloud/render/points"
)

// RenderView is the camera the active renderer draws with this frame. It is
// nil when no renderer is looking through a camera, as in headless runs.
type RenderView struct {
	Active *core.Camera
}

// PointDrawTarget is where point clouds submit their draw commands.
type PointDrawTarget struct {
	Target points.DrawTarget
}

// PointCloudStats accumulates the draw work of the current frame.
type PointCloudStats struct {
	Clouds  int
	Skipped int
	points.Stats
}

type pointCloudState struct {
	mainCamera *core.Camera
	cameras    map[EntityId]*core.Camera
	prepared   map[AssetId]struct{}
}

type VertexPointCloudModule struct{}

func (VertexPointCloudModule) Install(app *App, cmd *Commands) {
	useRenderView(app)
	if Resource[PointDrawTarget](app) == nil {
		app.addResources(&PointDrawTarget{})
	}
	app.addResources(
		&PointCloudStats{},
		&pointCloudState{
			cameras:  make(map[EntityId]*core.Camera),
			prepared: make(map[AssetId]struct{}),
		},
	)

	app.UseSystem(System(pointCloudStartupSystem).InStage(Startup))
	app.UseSystem(System(preparePointCloudsSystem).InStage(PreRender))
	app.UseSystem(System(drawPointCloudsSystem).InStage(Render))
}

// useDrawTarget points the shared PointDrawTarget at target, creating the
// resource if the point cloud module is not installed yet.
func useDrawTarget(app *App, target points.DrawTarget) {
	if res := Resource[PointDrawTarget](app); res != nil {
		res.Target = target
		return
	}
	app.addResources(&PointDrawTarget{Target: target})
}

func useRenderView(app *App) *RenderView {
	if view := Resource[RenderView](app); view != nil {
		return view
	}
	view := &RenderView{}
	app.addResources(view)
	return view
}

// findMainCamera returns the camera flagged Main, or the first camera found.
func findMainCamera(cmd *Commands) *core.Camera {
	var first, main *core.Camera
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		if cam.Camera == nil {
			return true
		}
		if first == nil {
			first = cam.Camera
		}
		if cam.Main {
			main = cam.Camera
			return false
		}
		return true
	})
	if main != nil {
		return main
	}
	return first
}

func pointCloudStartupSystem(cmd *Commands, state *pointCloudState) {
	state.mainCamera = findMainCamera(cmd)
	if state.mainCamera == nil {
		cmd.Logger().Warnf("No camera found, camera-facing point clouds will wait for a render view")
	}

	// Clouds without a mesh filter get an empty one so they can be queried
	// and assigned a mesh later.
	MakeQuery2[TransformComponent, VertexPointCloudComponent](cmd).Map(func(eid EntityId, _ *TransformComponent, _ *VertexPointCloudComponent) bool {
		if !hasComponent[MeshFilterComponent](cmd, eid) {
			cmd.AddComponents(eid, MeshFilterComponent{})
		}
		return true
	})
}

func preparePointCloudsSystem(cmd *Commands, assets *AssetServer, state *pointCloudState, stats *PointCloudStats) {
	*stats = PointCloudStats{}

	if state.mainCamera == nil {
		state.mainCamera = findMainCamera(cmd)
	}

	MakeQuery1[VertexPointCloudComponent](cmd).Map(func(eid EntityId, cloud *VertexPointCloudComponent) bool {
		if _, ok := state.prepared[cloud.Material]; ok {
			return true
		}
		material := assets.Material(cloud.Material)
		if material == nil {
			return true
		}
		points.EnsureInstancing(material, cmd.Logger())
		state.prepared[cloud.Material] = struct{}{}
		return true
	})
}

func drawPointCloudsSystem(cmd *Commands, assets *AssetServer, view *RenderView, target *PointDrawTarget, state *pointCloudState, stats *PointCloudStats) {
	if target.Target == nil {
		return
	}

	seen := make(map[EntityId]struct{}, len(state.cameras))
	MakeQuery3[TransformComponent, MeshFilterComponent, VertexPointCloudComponent](cmd).Map(
		func(eid EntityId, tr *TransformComponent, filter *MeshFilterComponent, cloud *VertexPointCloudComponent) bool {
			camera := points.ResolveCamera(view.Active, state.cameras[eid], state.mainCamera)
			state.cameras[eid] = camera
			seen[eid] = struct{}{}

			req := points.Request{
				Config:    cloud.Config,
				Mesh:      assets.Mesh(filter.Mesh),
				Object:    points.NewObject(tr.Position, tr.Rotation),
				PointMesh: assets.PointMesh(cloud.PointMesh),
				Material:  assets.Material(cloud.Material),
				Camera:    camera,
			}
			if !req.Ready() {
				stats.Skipped++
				return true
			}

			stats.Clouds++
			stats.Add(points.Draw(target.Target, req))
			return true
		})

	for eid := range state.cameras {
		if _, ok := seen[eid]; !ok {
			delete(state.cameras, eid)
		}
	}
}
