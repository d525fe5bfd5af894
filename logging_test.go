package vertexcloud

import (
	"bytes"
	"testing"

	"github.com/gekko3d/vertexcloud/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Logger())

	app = NewAppBuilder().Build()
	assert.IsType(t, &nopLogger{}, app.Logger())
}

func TestLoggingModule_InstallsZapLogger(t *testing.T) {
	app := NewAppBuilder().UseModule(LoggingModule{Level: "warn"}).Build()

	l, ok := app.Logger().(*ZapLogger)
	if assert.True(t, ok) {
		assert.False(t, l.DebugEnabled())
	}
}

func TestZapLogger_SetDebug(t *testing.T) {
	var buf bytes.Buffer
	base, level := logger.New(logger.Options{Level: "info", Console: &buf})
	l := NewZapLogger(base, level)

	l.Debugf("first %d", 1)
	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("second %d", 2)
	l.SetDebug(false)
	l.Debugf("third %d", 3)
	l.Infof("info %s", "line")
	l.Sync()

	out := buf.String()
	assert.NotContains(t, out, "first 1")
	assert.Contains(t, out, "second 2")
	assert.NotContains(t, out, "third 3")
	assert.Contains(t, out, "info line")
}
