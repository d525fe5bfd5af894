package vertexcloud

import (
	"testing"

	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/gekko3d/vertexcloud/render/points"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	nopLogger
	infos []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, format)
}

type pointCloudFixture struct {
	app      *App
	assets   *AssetServer
	camera   *core.Camera
	material *core.Material
	cloud    EntityId
}

func lineMesh(n int) *core.Mesh {
	mesh := &core.Mesh{Name: "line"}
	for i := 0; i < n; i++ {
		mesh.Vertices = append(mesh.Vertices, mgl32.Vec3{float32(i), 0, 0})
		mesh.Normals = append(mesh.Normals, mgl32.Vec3{0, 1, 0})
	}
	return mesh
}

func newPointCloudFixture(t *testing.T, vertices int, cfg points.Config, modules ...Module) *pointCloudFixture {
	t.Helper()

	all := append([]Module{AssetServerModule{}, VertexPointCloudModule{}}, modules...)
	app := NewAppBuilder().UseModule(all...).Build()
	assets := Resource[AssetServer](app)

	meshId, err := assets.AddMesh(lineMesh(vertices))
	require.NoError(t, err)
	matId, err := assets.CreateMaterial("points", [4]float32{1, 1, 1, 1}, "")
	require.NoError(t, err)

	camera := core.NewCamera("main")
	camera.Position = mgl32.Vec3{0, 0, 10}

	cmd := app.Commands()
	cloud := cmd.AddEntity(
		NewTransformComponent(mgl32.Vec3{}, mgl32.QuatIdent()),
		MeshFilterComponent{Mesh: meshId},
		VertexPointCloudComponent{
			Config:    cfg,
			PointMesh: assets.CreateQuadPointMesh(),
			Material:  matId,
		},
	)
	cmd.AddEntity(CameraComponent{Camera: camera, Main: true})
	app.FlushCommands()

	return &pointCloudFixture{
		app:      app,
		assets:   assets,
		camera:   camera,
		material: assets.Material(matId),
		cloud:    cloud,
	}
}

func TestVertexPointCloudModule_HeadlessChunks(t *testing.T) {
	f := newPointCloudFixture(t, 1500, points.DefaultConfig(), HeadlessRendererModule{})

	f.app.Tick()

	rec := Resource[HeadlessRenderer](f.app).Recorder
	require.Len(t, rec.Calls, 2)
	assert.Len(t, rec.Calls[0].Transforms, 1024)
	assert.Len(t, rec.Calls[1].Transforms, 476)

	stats := Resource[PointCloudStats](f.app)
	assert.Equal(t, 1, stats.Clouds)
	assert.Equal(t, 1500, stats.Points)
	assert.Equal(t, 2, stats.Chunks)
	assert.Equal(t, 2, stats.DrawCalls)
	assert.Equal(t, 2, stats.InstancedCalls)

	// Recorder and stats only hold the latest frame.
	f.app.Tick()
	assert.Len(t, rec.Calls, 2)
	assert.Equal(t, 1500, stats.Points)
}

func TestVertexPointCloudModule_EnablesInstancingOnce(t *testing.T) {
	log := &recordingLogger{}
	app := NewAppBuilder().Build()
	app.addResources(log)
	f := newPointCloudFixtureOn(t, app)

	require.False(t, f.material.EnableInstancing)
	for i := 0; i < 100; i++ {
		app.Tick()
	}

	assert.True(t, f.material.EnableInstancing)
	assert.Len(t, log.infos, 1)
}

func newPointCloudFixtureOn(t *testing.T, app *App) *pointCloudFixture {
	t.Helper()
	app.UseModules(AssetServerModule{}, VertexPointCloudModule{}, HeadlessRendererModule{})
	assets := Resource[AssetServer](app)

	meshId, err := assets.AddMesh(lineMesh(10))
	require.NoError(t, err)
	matId, err := assets.CreateMaterial("points", [4]float32{1, 1, 1, 1}, "")
	require.NoError(t, err)

	cmd := app.Commands()
	cmd.AddEntity(
		NewTransformComponent(mgl32.Vec3{}, mgl32.QuatIdent()),
		MeshFilterComponent{Mesh: meshId},
		VertexPointCloudComponent{Config: points.DefaultConfig(), PointMesh: assets.CreateQuadPointMesh(), Material: matId},
	)
	cmd.AddEntity(CameraComponent{Camera: core.NewCamera("main"), Main: true})
	app.FlushCommands()

	return &pointCloudFixture{app: app, assets: assets, material: assets.Material(matId)}
}

func TestVertexPointCloudModule_NoTargetNoDraw(t *testing.T) {
	f := newPointCloudFixture(t, 10, points.DefaultConfig())

	assert.NotPanics(t, f.app.Tick)
	assert.Zero(t, Resource[PointCloudStats](f.app).Points)
}

func TestVertexPointCloudModule_DisabledCloudIsSkipped(t *testing.T) {
	cfg := points.DefaultConfig()
	cfg.Draw = false
	f := newPointCloudFixture(t, 10, cfg, HeadlessRendererModule{})

	f.app.Tick()

	assert.Empty(t, Resource[HeadlessRenderer](f.app).Recorder.Calls)
	stats := Resource[PointCloudStats](f.app)
	assert.Zero(t, stats.Clouds)
	assert.Equal(t, 1, stats.Skipped)
}

func TestVertexPointCloudModule_FacesActiveCamera(t *testing.T) {
	cfg := points.DefaultConfig()
	cfg.GlobalScale = 1
	f := newPointCloudFixture(t, 1, cfg, HeadlessRendererModule{})
	rec := Resource[HeadlessRenderer](f.app).Recorder

	f.app.Tick()
	forward := rec.Calls[0].Transforms[0].Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	assert.InDelta(t, 1.0, forward.Z(), 1e-4, "faces the main camera at +Z")

	// A renderer looking through another camera takes precedence.
	other := core.NewCamera("other")
	other.Position = mgl32.Vec3{10, 0, 0}
	Resource[RenderView](f.app).Active = other
	f.app.Tick()
	forward = rec.Calls[0].Transforms[0].Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	assert.InDelta(t, 1.0, forward.X(), 1e-4)

	// Without an active camera the last resolved one is kept.
	Resource[RenderView](f.app).Active = nil
	f.app.Tick()
	forward = rec.Calls[0].Transforms[0].Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	assert.InDelta(t, 1.0, forward.X(), 1e-4)
	assert.Same(t, other, Resource[pointCloudState](f.app).cameras[f.cloud])
}

func TestVertexPointCloudModule_NoCameraFaceCameraSkips(t *testing.T) {
	app := NewAppBuilder().UseModule(AssetServerModule{}, VertexPointCloudModule{}, HeadlessRendererModule{}).Build()
	assets := Resource[AssetServer](app)
	meshId, err := assets.AddMesh(lineMesh(4))
	require.NoError(t, err)
	matId, err := assets.CreateMaterial("points", [4]float32{1, 1, 1, 1}, "")
	require.NoError(t, err)

	app.Commands().AddEntity(
		NewTransformComponent(mgl32.Vec3{}, mgl32.QuatIdent()),
		MeshFilterComponent{Mesh: meshId},
		VertexPointCloudComponent{Config: points.DefaultConfig(), PointMesh: assets.CreateQuadPointMesh(), Material: matId},
	)
	app.FlushCommands()

	app.Tick()
	assert.Empty(t, Resource[HeadlessRenderer](app).Recorder.Calls)
	assert.Equal(t, 1, Resource[PointCloudStats](app).Skipped)
}

func TestVertexPointCloudModule_AddsMissingMeshFilter(t *testing.T) {
	app := NewAppBuilder().UseModule(AssetServerModule{}, VertexPointCloudModule{}, HeadlessRendererModule{}).Build()
	eid := app.Commands().AddEntity(
		NewTransformComponent(mgl32.Vec3{}, mgl32.QuatIdent()),
		VertexPointCloudComponent{Config: points.DefaultConfig()},
	)
	app.FlushCommands()

	app.Tick()

	cmd := app.Commands()
	assert.True(t, hasComponent[MeshFilterComponent](cmd, eid))
	assert.Empty(t, Resource[HeadlessRenderer](app).Recorder.Calls)
}

func TestVertexPointCloudModule_ForgetsRemovedClouds(t *testing.T) {
	f := newPointCloudFixture(t, 3, points.DefaultConfig(), HeadlessRendererModule{})
	state := Resource[pointCloudState](f.app)

	f.app.Tick()
	assert.Contains(t, state.cameras, f.cloud)

	f.app.Commands().RemoveEntity(f.cloud)
	f.app.FlushCommands()
	f.app.Tick()
	assert.NotContains(t, state.cameras, f.cloud)
}

func TestFindMainCamera(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	assert.Nil(t, findMainCamera(cmd))

	first := core.NewCamera("first")
	main := core.NewCamera("main")
	cmd.AddEntity(CameraComponent{Camera: first})
	app.FlushCommands()
	assert.Same(t, first, findMainCamera(cmd))

	cmd.AddEntity(CameraComponent{Camera: main, Main: true})
	app.FlushCommands()
	assert.Same(t, main, findMainCamera(cmd))
}
