package vertexcloud

import (
	"github.com/gekko3d/vertexcloud/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ZapLogger adapts a zap logger to Logger.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
	// debug toggles back to this level when disabled
	baseLevel zapcore.Level
}

func NewZapLogger(base *zap.Logger, level zap.AtomicLevel) *ZapLogger {
	baseLevel := level.Level()
	if baseLevel < zapcore.InfoLevel {
		baseLevel = zapcore.InfoLevel
	}
	return &ZapLogger{
		base:      base,
		sugar:     base.Sugar(),
		level:     level,
		baseLevel: baseLevel,
	}
}

func (l *ZapLogger) DebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *ZapLogger) SetDebug(enabled bool) {
	if enabled {
		l.level.SetLevel(zapcore.DebugLevel)
	} else {
		l.level.SetLevel(l.baseLevel)
	}
}

func (l *ZapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *ZapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() {
	_ = l.base.Sync()
}

// LoggingModule installs a zap-backed logger as a resource.
type LoggingModule struct {
	Level   string
	LogFile string
	Debug   bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	base, level := logger.New(logger.DefaultOptions(m.Level, m.LogFile))
	l := NewZapLogger(base, level)
	if m.Debug {
		l.SetDebug(true)
	}
	app.addResources(l)
}

// Nop logger and App helper accessor

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
