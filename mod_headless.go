package vertexcloud

import (
	"github.com/gekko3d/vertexcloud/render/points"
)

// HeadlessRenderer records point draws instead of submitting them to a GPU.
type HeadlessRenderer struct {
	Recorder *points.Recorder
	// Frames is the number of frames to render before quitting; zero runs
	// until something else quits the app.
	Frames uint64
}

type HeadlessRendererModule struct {
	Frames uint64
}

func (mod HeadlessRendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererHeadless)

	renderer := &HeadlessRenderer{
		Recorder: points.NewRecorder(),
		Frames:   mod.Frames,
	}
	app.addResources(renderer)
	useDrawTarget(app, renderer.Recorder)
	useRenderView(app)

	app.UseSystem(System(headlessBeginFrameSystem).InStage(PreUpdate))
	app.UseSystem(System(headlessEndFrameSystem).InStage(PostRender))
}

func headlessBeginFrameSystem(renderer *HeadlessRenderer) {
	renderer.Recorder.Reset()
}

func headlessEndFrameSystem(cmd *Commands, renderer *HeadlessRenderer) {
	log := cmd.Logger()
	if log.DebugEnabled() {
		rec := renderer.Recorder
		log.Debugf("frame %d: %d draw calls (%d instanced), %d points",
			cmd.Frame(), len(rec.Calls), rec.InstancedCalls(), len(rec.Transforms()))
	}

	if renderer.Frames > 0 && cmd.Frame()+1 >= renderer.Frames {
		cmd.Quit()
	}
}
