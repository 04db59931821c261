package gen

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the generator's logger. It is a no-op logger unless
// SetLogger was called first.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the generator's logger. It must be called before
// rendering.
func SetLogger(l *zap.Logger) {
	logger = l
}
