// Package logging defines a minimal structured-logging interface for the
// application, backed by slog. Handlers obtain a request-scoped child logger
// (carrying the request ID) from the gin context.
package logging

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// contextKey is the gin context key under which the request-scoped logger
// is stored.
const contextKey = "logger"

// Logger is a structured logger. The variadic args are interpreted as
// key-value pairs, e.g.:
//
//	log.Info("task created", "task_id", task.TaskID)
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New returns a JSON logger writing to stdout at the given level
// ("debug", "info", "warn", "error").
func New(level string) Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return &slogLogger{l: slog.New(handler)}
}

func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// Into stores a request-scoped logger in the gin context.
func Into(c *gin.Context, l Logger) {
	c.Set(contextKey, l)
}

// From returns the request-scoped logger, falling back to the process
// default when none was attached.
func From(c *gin.Context) Logger {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(Logger); ok {
			return l
		}
	}
	return &slogLogger{l: slog.Default()}
}
