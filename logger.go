package powgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with powgo-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// WithSetSize adds a set size field to the logger.
func (l *Logger) WithSetSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("set_size", size),
	}
}

// LogGenerate logs the outcome of triplet generation.
func (l *Logger) LogGenerate(count int, elapsed time.Duration) {
	l.Info("triplets generated",
		"count", count,
		"elapsed", elapsed.Round(time.Second),
	)
}

// LogCombiners logs how many work units the search was partitioned into.
func (l *Logger) LogCombiners(count int) {
	l.Info("using combiners",
		"count", count,
	)
}

// LogProgress logs one progress sample of a running search.
func (l *Logger) LogProgress(percent int, elapsed time.Duration, bestPairs, improvements int64) {
	l.Info("search progress",
		"percent", percent,
		"elapsed", elapsed.Round(time.Second),
		"best_pairs", bestPairs,
		"improvements", improvements,
	)
}

// LogSearch logs a completed search.
func (l *Logger) LogSearch(setSize int, pairCount int, combinations int64, improvements int, elapsed time.Duration) {
	l.Info("search completed",
		"set_size", setSize,
		"pairs", pairCount,
		"combinations", combinations,
		"improvements", improvements,
		"elapsed", elapsed.Round(time.Second),
	)
}
