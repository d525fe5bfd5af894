package points

import (
	"testing"

	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/stretchr/testify/assert"
)

func TestResolveCamera(t *testing.T) {
	active := core.NewCamera("scene-view")
	cached := core.NewCamera("cached")
	fallback := core.NewCamera("main")

	tests := []struct {
		name                     string
		active, cached, fallback *core.Camera
		expected                 *core.Camera
	}{
		{"active wins", active, cached, fallback, active},
		{"cached when no active", nil, cached, fallback, cached},
		{"fallback when nothing cached", nil, nil, fallback, fallback},
		{"nothing at all", nil, nil, nil, nil},
		{"active without fallback", active, nil, nil, active},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, ResolveCamera(tt.active, tt.cached, tt.fallback))
		})
	}
}

func TestResolveCamera_CacheSurvivesActiveGoingAway(t *testing.T) {
	active := core.NewCamera("scene-view")
	fallback := core.NewCamera("main")

	var cache *core.Camera
	cache = ResolveCamera(active, cache, fallback)
	cache = ResolveCamera(nil, cache, fallback)

	assert.Same(t, active, cache)
}
