package godmap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with godmap-specific helpers so read/write/fetch
// operations log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithFile adds a file field to the logger.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{Logger: l.Logger.With("file", path)}
}

// LogRead logs a file read operation.
func (l *Logger) LogRead(path string, records int, err error) {
	if err != nil {
		l.Error("read failed",
			"file", path,
			"error", err,
		)
	} else {
		l.Debug("read completed",
			"file", path,
			"records", records,
		)
	}
}

// LogWrite logs a file write operation.
func (l *Logger) LogWrite(path string, records int, err error) {
	if err != nil {
		l.Error("write failed",
			"file", path,
			"records", records,
			"error", err,
		)
	} else {
		l.Debug("write completed",
			"file", path,
			"records", records,
		)
	}
}

// LogBulkRead logs a multi-file read operation.
func (l *Logger) LogBulkRead(files, failed int) {
	if failed > 0 {
		l.Warn("bulk read completed with failures",
			"files", files,
			"failed", failed,
		)
	} else {
		l.Info("bulk read completed",
			"files", files,
		)
	}
}
