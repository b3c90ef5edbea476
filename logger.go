package classmap

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with classmap-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// With returns a Logger with the given attributes attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// LogBuild logs a class map construction.
func (l *Logger) LogBuild(count int, capacity uint32, byteSize int64, d time.Duration, err error) {
	if err != nil {
		l.Error("class map build failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("class map built",
		"count", count,
		"capacity", capacity,
		"bytes", byteSize,
		"duration", d,
	)
}

// LogClose logs a class map teardown.
func (l *Logger) LogClose(count int, capacity uint32, released int64) {
	l.Debug("class map closed",
		"count", count,
		"capacity", capacity,
		"released_bytes", released,
	)
}
