package lazygrid

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger used by grids created without
// [WithLogger]. It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	logger.CompareAndSwap(nil, zap.NewNop())
	return logger.Load()
}

// SetLogger configures the package logger. Grids pick it up when they are
// created; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
