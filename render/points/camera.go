package points

import "github.com/gekko3d/vertexcloud/render/core"

// ResolveCamera picks the camera points should face. The camera currently
// rendering wins; otherwise the previously resolved camera is reused, and
// only when none was resolved yet the fallback (usually the main camera) is
// taken. The returned camera is also the cache value for the next call.
func ResolveCamera(active, cached, fallback *core.Camera) *core.Camera {
	if active != nil {
		return active
	}
	if cached != nil {
		return cached
	}
	return fallback
}
