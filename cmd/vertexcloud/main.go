// Package main renders a mesh's vertices as billboard point clouds.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/vertexcloud"
	"github.com/gekko3d/vertexcloud/internal/config"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	app, err := buildApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup error: %v\n", err)
		os.Exit(1)
	}
	if zl, ok := app.Logger().(*vertexcloud.ZapLogger); ok {
		defer zl.Sync()
	}

	app.Run()

	if !cfg.Headless.Enabled {
		vertexcloud.GpuClientModule{}.Shutdown(app)
	}
}

func buildApp(cfg *config.Config) (*vertexcloud.App, error) {
	builder := vertexcloud.NewAppBuilder().
		UseModule(
			vertexcloud.LoggingModule{
				Level:   cfg.Logging.Level,
				LogFile: cfg.Logging.LogFile,
			},
			vertexcloud.AssetServerModule{},
			vertexcloud.VertexPointCloudModule{},
			vertexcloud.OrbitCameraModule{},
		)

	if cfg.Headless.Enabled {
		builder.UseModule(
			vertexcloud.TimeModule{FixedDt: cfg.Headless.FixedDt},
			vertexcloud.HeadlessRendererModule{Frames: cfg.Headless.Frames},
		)
	} else {
		builder.UseModule(
			vertexcloud.TimeModule{},
			vertexcloud.GpuClientModule{
				WindowWidth:  cfg.Window.Width,
				WindowHeight: cfg.Window.Height,
				WindowTitle:  cfg.Window.Title,
				VSync:        cfg.Window.VSync,
				ClearColor:   wgpu.Color{R: 0.05, G: 0.05, B: 0.08, A: 1},
			},
		)
	}

	app := builder.Build()
	if err := setupScene(app, cfg); err != nil {
		return nil, err
	}
	return app, nil
}
