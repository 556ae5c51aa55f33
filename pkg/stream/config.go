package stream

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// SYSTEM CONFIGURATION
// ============================================================================

// DefaultReceiveTimeout bounds a plain Next. It is long on purpose: the
// common case is a producer that will close eventually, and the bound exists
// only so an orphaned consumer does not hang forever. Callers with real
// latency requirements use NextWithTimeout.
const DefaultReceiveTimeout = 15 * time.Minute

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// SetLogger installs a logger for debug events (stream creation, close,
// receive timeouts). The default is a no-op logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func debugLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
