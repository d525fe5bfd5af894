package vertexcloud

import (
	"testing"

	"github.com/gekko3d/vertexcloud/render/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessRendererModule_QuitsAfterFrames(t *testing.T) {
	app := NewAppBuilder().UseModule(HeadlessRendererModule{Frames: 7}).Build()

	app.Run()

	assert.Equal(t, uint64(7), app.Frame())
}

func TestHeadlessRendererModule_InstallsDrawTarget(t *testing.T) {
	app := NewAppBuilder().UseModule(HeadlessRendererModule{}, VertexPointCloudModule{}).Build()

	renderer := Resource[HeadlessRenderer](app)
	target := Resource[PointDrawTarget](app)
	require.NotNil(t, renderer)
	require.NotNil(t, target)
	assert.Same(t, renderer.Recorder, target.Target.(*points.Recorder))
	assert.NotNil(t, Resource[RenderView](app))
}

func TestHeadlessRendererModule_UnlimitedFrames(t *testing.T) {
	app := NewAppBuilder().UseModule(HeadlessRendererModule{}).Build()
	for i := 0; i < 3; i++ {
		app.Tick()
	}
	assert.False(t, app.Quitting())
}
