package calculation

import "go.uber.org/zap"

// Logger is a minimal logging interface for the calculation engine.
// Implementations must be safe for concurrent use; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// ZapLogger adapts a zap logger to Logger.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger wraps l; a nil logger yields NopLogger.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return ZapLogger{s: l.Sugar()}
}

func (z ZapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z ZapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z ZapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z ZapLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }
