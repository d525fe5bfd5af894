package vertexcloud

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/vertexcloud/render/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GpuClientModule opens a window and renders point clouds with WebGPU.
type GpuClientModule struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
	VSync        bool
	ClearColor   wgpu.Color
}

type gpuPointRenderer struct {
	pass       *gpu.PointRenderPass
	clearColor wgpu.Color
}

func (mod GpuClientModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererWGPU)

	width, height, title := mod.WindowWidth, mod.WindowHeight, mod.WindowTitle
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "vertexcloud"
	}

	windowState, err := createWindowState(width, height, title)
	if err != nil {
		panic(err)
	}
	gpuState, err := createGpuState(windowState, mod.VSync)
	if err != nil {
		panic(err)
	}
	pass, err := gpu.NewPointRenderPass(gpuState.device, gpuState.surfaceConfig.Format)
	if err != nil {
		panic(err)
	}

	renderer := &gpuPointRenderer{
		pass:       pass,
		clearColor: mod.ClearColor,
	}
	app.addResources(windowState, gpuState, renderer)
	useDrawTarget(app, &pass.PointList)
	useRenderView(app)

	app.UseSystem(System(gpuEventsSystem).InStage(PreUpdate))
	app.UseSystem(System(gpuRenderViewSystem).InStage(PreRender))
	app.UseSystem(System(gpuRenderSystem).InStage(PostRender))

	cmd.Logger().Infof("WebGPU renderer ready: %dx%d, format %v", width, height, gpuState.surfaceConfig.Format)
}

func gpuEventsSystem(cmd *Commands, window *WindowState, gpuState *GpuState, renderer *gpuPointRenderer) {
	glfw.PollEvents()

	if window.windowGlfw.ShouldClose() || window.windowGlfw.GetKey(glfw.KeyEscape) == glfw.Press {
		cmd.Quit()
	}
	if window.resized {
		window.resized = false
		if gpuState.resize(window.WindowWidth, window.WindowHeight) {
			cmd.Logger().Debugf("Surface resized to %dx%d", window.WindowWidth, window.WindowHeight)
		}
	}

	renderer.pass.Reset()
}

// gpuRenderViewSystem makes the main camera the one being rendered.
func gpuRenderViewSystem(cmd *Commands, view *RenderView) {
	view.Active = findMainCamera(cmd)
}

func gpuRenderSystem(cmd *Commands, view *RenderView, window *WindowState, gpuState *GpuState, renderer *gpuPointRenderer) {
	if window.WindowWidth <= 0 || window.WindowHeight <= 0 {
		return
	}
	log := cmd.Logger()
	pass := renderer.pass

	if view.Active != nil {
		viewProj := view.Active.GetProjectionMatrix(window.Aspect()).Mul4(view.Active.GetViewMatrix())
		if err := pass.SetCamera(gpuState.queue, viewProj); err != nil {
			log.Errorf("Camera upload failed: %v", err)
			return
		}
	}
	if err := pass.Upload(gpuState.queue); err != nil {
		log.Errorf("Point upload failed: %v", err)
		return
	}

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		log.Warnf("GetCurrentTexture failed: %v", err)
		return
	}
	defer nextTexture.Release()

	textureView, err := nextTexture.CreateView(nil)
	if err != nil {
		log.Errorf("CreateView failed: %v", err)
		return
	}
	defer textureView.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		log.Errorf("CreateCommandEncoder failed: %v", err)
		return
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       textureView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: renderer.clearColor,
			},
		},
	})
	pass.Encode(renderPass)
	if err := renderPass.End(); err != nil {
		log.Errorf("Render pass failed: %v", err)
		renderPass.Release()
		return
	}
	renderPass.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		log.Errorf("Encoder finish failed: %v", err)
		return
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}

// Shutdown releases GPU and window resources installed by GpuClientModule.
func (mod GpuClientModule) Shutdown(app *App) {
	if renderer := Resource[gpuPointRenderer](app); renderer != nil {
		renderer.pass.Release()
	}
	if gpuState := Resource[GpuState](app); gpuState != nil {
		gpuState.release()
	}
	if window := Resource[WindowState](app); window != nil {
		window.destroy()
	}
}
