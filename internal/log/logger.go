package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger - Returns the module wide logger. Until SetLogger is called it follows the global zap logger, so an
// application that installed one with zap.ReplaceGlobals gets container events in its own log, and everybody
// else gets a no-op.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.L()
}

// SetLogger - Replaces the module wide logger, nil goes back to following the global zap logger
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// OrDefault - Returns l if given, otherwise the module wide logger
func OrDefault(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Logger()
	}
	return l
}
