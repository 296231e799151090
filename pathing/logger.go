package pathing

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pathing-specific helpers.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogReset logs a full rebuild of cached search state.
func (l *Logger) LogReset(pos Node, budget float64) {
	l.Debug("search state reset",
		"position", pos,
		"budget", budget,
	)
}

// LogPass logs a completed expansion pass.
func (l *Logger) LogPass(dest Node, hasDest bool, expanded int) {
	if hasDest {
		l.Debug("pass completed",
			"destination", dest,
			"expanded", expanded,
		)
	} else {
		l.Debug("exploration pass completed",
			"expanded", expanded,
		)
	}
}

// LogPath logs the outcome of a shortest-path query. Unreachable is a normal
// outcome, not a fault.
func (l *Logger) LogPath(dest Node, waypoints int, found bool) {
	if found {
		l.Debug("path resolved",
			"destination", dest,
			"waypoints", waypoints,
		)
	} else {
		l.Debug("destination unreachable",
			"destination", dest,
		)
	}
}
