// Package config handles vertexcloud configuration loading and management.
package config

import (
	"time"

	"github.com/gekko3d/vertexcloud/render/points"
	"github.com/go-gl/mathgl/mgl32"
)

// Config holds all application settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
	Points   points.Config  `yaml:"points"`
	Source   SourceConfig   `yaml:"source"`
	Object   ObjectConfig   `yaml:"object"`
	Camera   CameraConfig   `yaml:"camera"`
	Sprite   SpriteConfig   `yaml:"sprite"`
	Headless HeadlessConfig `yaml:"headless"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// SourceConfig selects the mesh whose vertices become points. Params are
// passed to the procedural generator named by Kind.
type SourceConfig struct {
	Kind   string    `yaml:"kind"`
	Params []float32 `yaml:"params,flow"`
}

// ObjectConfig places the source mesh. Rotation is in Euler degrees.
type ObjectConfig struct {
	Position mgl32.Vec3 `yaml:"position,flow"`
	Rotation mgl32.Vec3 `yaml:"rotation,flow"`
}

type CameraConfig struct {
	Position   mgl32.Vec3 `yaml:"position,flow"`
	Target     mgl32.Vec3 `yaml:"target,flow"`
	Orbit      bool       `yaml:"orbit"`
	OrbitSpeed float32    `yaml:"orbit_speed"` // radians per second
}

// SpriteConfig describes the point material. An empty Texture uses a
// generated round sprite of SpriteSize pixels.
type SpriteConfig struct {
	Texture    string     `yaml:"texture"`
	SpriteSize int        `yaml:"sprite_size"`
	Color      [4]float32 `yaml:"color,flow"`
}

// HeadlessConfig runs without a window, recording draws for Frames frames.
type HeadlessConfig struct {
	Enabled bool          `yaml:"enabled"`
	Frames  uint64        `yaml:"frames"`
	FixedDt time.Duration `yaml:"fixed_dt"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "vertexcloud",
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Points: points.DefaultConfig(),
		Source: SourceConfig{
			Kind:   "sphere",
			Params: []float32{2, 32, 64},
		},
		Object: ObjectConfig{},
		Camera: CameraConfig{
			Position:   mgl32.Vec3{0, 2, 8},
			Orbit:      true,
			OrbitSpeed: 0.3,
		},
		Sprite: SpriteConfig{
			SpriteSize: 64,
			Color:      [4]float32{1, 1, 1, 1},
		},
		Headless: HeadlessConfig{
			Frames:  120,
			FixedDt: time.Second / 60,
		},
	}
}
