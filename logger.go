package bucketize

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bucketize-specific context.
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

// WithBuckets adds a bucket-count field to the logger.
func (l *Logger) WithBuckets(buckets int) *Logger {
	return &Logger{
		Logger: l.Logger.With("buckets", buckets),
	}
}

// WithRows adds a row-count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogFit logs a fit operation.
func (l *Logger) LogFit(ctx context.Context, strategy string, rows, buckets int, cost float64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"strategy", strategy,
			"rows", rows,
			"buckets", buckets,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"strategy", strategy,
			"rows", rows,
			"buckets", buckets,
			"cost", cost,
			"elapsed", elapsed,
		)
	}
}

// LogTransform logs a label-assignment pass over a score sequence.
func (l *Logger) LogTransform(ctx context.Context, rows int, elapsed time.Duration) {
	l.DebugContext(ctx, "transform completed",
		"rows", rows,
		"elapsed", elapsed,
	)
}

// LogSave logs a model save operation.
func (l *Logger) LogSave(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "model save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "model saved",
			"name", name,
		)
	}
}

// LogLoad logs a model load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "model load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "model loaded",
			"name", name,
		)
	}
}
