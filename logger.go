package obscube

import (
	"log/slog"
	"os"

	"github.com/probekit/obscube/model"
)

// Logger wraps slog.Logger with obscube-specific context.
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

// WithRecordID adds a record ID field to the logger.
func (l *Logger) WithRecordID(id model.RecordID) *Logger {
	return &Logger{
		Logger: l.Logger.With("record_id", uint32(id)),
	}
}

// WithSource adds a source identifier field to the logger.
func (l *Logger) WithSource(src model.SourceID) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", src.String()),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(id model.RecordID, obs model.Observation) {
	l.Debug("insert completed",
		"record_id", uint32(id),
		"source", obs.Source.String(),
		"signal", obs.Signal,
	)
}

// LogQuery logs a query operation against one dimension.
func (l *Logger) LogQuery(dimension string, results int) {
	l.Debug("query completed",
		"dimension", dimension,
		"results", results,
	)
}

// LogMultiQuery logs a multi-dimensional query.
func (l *Logger) LogMultiQuery(filters, results int, err error) {
	if err != nil {
		l.Error("multi query failed",
			"filters", filters,
			"error", err,
		)
	} else {
		l.Debug("multi query completed",
			"filters", filters,
			"results", results,
		)
	}
}
