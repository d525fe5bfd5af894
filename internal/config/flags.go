package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config   string
	Debug    bool
	Headless bool
	Frames   uint64
	Width    int
	Height   int
}

// RegisterFlags binds Flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Headless, "headless", false, "Record draws without opening a window")
	fs.Uint64Var(&f.Frames, "frames", 0, "Frames to render in headless mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	return f
}

// Apply applies CLI flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Headless {
		cfg.Headless.Enabled = true
	}
	if f.Frames > 0 {
		cfg.Headless.Frames = f.Frames
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
}
