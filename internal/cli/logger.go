package cli

import "go.uber.org/zap"

// appLogger wraps zap for verbose debug output. It is a no-op unless the
// user asked for --verbose, so the default experience stays silent.
type appLogger struct {
	sugared *zap.SugaredLogger
}

func newAppLogger(globals *Globals) *appLogger {
	if globals == nil || !globals.Verbose {
		return &appLogger{}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Encoding = "json"
	logger, _ := cfg.Build()
	return &appLogger{sugared: logger.Sugar()}
}

func (l *appLogger) Debug(format string, args ...interface{}) {
	if l.sugared == nil {
		return
	}
	l.sugared.Debugf(format, args...)
}

// Sugared exposes the underlying logger for packages that log structured
// fields directly. Always non-nil; silent when --verbose is off.
func (l *appLogger) Sugared() *zap.SugaredLogger {
	if l.sugared == nil {
		return zap.NewNop().Sugar()
	}
	return l.sugared
}
