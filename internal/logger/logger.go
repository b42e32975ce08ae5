package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the engine-wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

// Init sets up the production logger at info level
func Init() {
	if err := InitWithLevel("info", false); err != nil {
		Log = zap.NewNop()
	}
}

// InitWithLevel builds the global logger. Development mode switches to the
// console encoder with caller and stack information.
func InitWithLevel(level string, development bool) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	Log = l
	return nil
}

// Or returns l, falling back to the global logger when l is nil
func Or(l *zap.Logger) *zap.Logger {
	if l != nil {
		return l
	}
	return Log
}

// Sync flushes buffered log entries
func Sync() {
	_ = Log.Sync()
}
