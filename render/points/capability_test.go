package points

import (
	"testing"

	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/stretchr/testify/assert"
)

type countingLogger struct {
	lines []string
}

func (l *countingLogger) Infof(format string, args ...any) {
	l.lines = append(l.lines, format)
}

func TestEnsureInstancing_TogglesOnce(t *testing.T) {
	material := core.DefaultMaterial()
	log := &countingLogger{}

	toggles := 0
	for frame := 0; frame < 100; frame++ {
		if EnsureInstancing(material, log) {
			toggles++
		}
	}

	assert.Equal(t, 1, toggles)
	assert.Len(t, log.lines, 1)
	assert.True(t, material.EnableInstancing)
}

func TestEnsureInstancing_AlreadyEnabled(t *testing.T) {
	material := core.DefaultMaterial()
	material.EnableInstancing = true
	log := &countingLogger{}

	assert.False(t, EnsureInstancing(material, log))
	assert.Empty(t, log.lines)
}

func TestEnsureInstancing_NilMaterialAndLogger(t *testing.T) {
	assert.False(t, EnsureInstancing(nil, nil))

	material := core.DefaultMaterial()
	assert.True(t, EnsureInstancing(material, nil))
}
