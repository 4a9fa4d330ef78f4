// Package debug carries the debug logging toggle of the transmute tooling.
//
// The library itself never logs; only the programs under cmd/ do, through this
// package.
package debug

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	enabled int32 = 0

	mutex  sync.Mutex
	logger = zap.NewNop()
	sugar  = logger.Sugar()
)

// Toggle turns on/off debug mode. Turning it on installs a development logger
// writing to stderr unless a logger was configured with SetLogger.
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
		mutex.Lock()
		if !logger.Core().Enabled(zap.DebugLevel) {
			if l, err := zap.NewDevelopment(); err == nil {
				setLogger(l)
			}
		}
		mutex.Unlock()
	}
	atomic.StoreInt32(&enabled, val)
}

// SetLogger configures the logger receiving debug messages.
func SetLogger(l *zap.Logger) {
	mutex.Lock()
	defer mutex.Unlock()
	setLogger(l)
}

func setLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger, sugar = l, l.Sugar()
}

// Logger returns the logger receiving debug messages.
func Logger() *zap.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	return logger
}

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if atomic.LoadInt32(&enabled) != 1 {
		return
	}
	f()
}

// Format a log line and writes it to the debug logger if debug is enabled.
func Format(format string, args ...interface{}) {
	if atomic.LoadInt32(&enabled) != 1 {
		return
	}
	mutex.Lock()
	s := sugar
	mutex.Unlock()
	s.Debugf(format, args...)
}
