package points

import "github.com/gekko3d/vertexcloud/render/core"

// Logger is the logging surface used by this package.
type Logger interface {
	Infof(format string, args ...any)
}

// EnsureInstancing enables instancing on material if needed and reports
// whether the material was changed. It is meant to run once during setup,
// not on the per-frame draw path.
func EnsureInstancing(material *core.Material, log Logger) bool {
	if material == nil || material.EnableInstancing {
		return false
	}
	material.EnableInstancing = true
	if log != nil {
		log.Infof("Point material %q doesn't support instancing. Enabling instancing...", material.Name)
	}
	return true
}
