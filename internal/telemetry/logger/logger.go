package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the application logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithContext(ctx context.Context) Logger
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the output format (json, text).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
	// AddSource adds source file information to log entries.
	AddSource bool
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

// levelVar backs every handler so SetLevel takes effect process-wide,
// including on loggers created before the level change.
var levelVar = new(slog.LevelVar)

// contactLogger binds a slog.Logger to the context its records are
// emitted under. Attrs flow through the redaction ReplaceAttr hook, so
// contact fields never reach the output unmasked.
type contactLogger struct {
	sl  *slog.Logger
	ctx context.Context
}

// New creates a logger from cfg. The format falls back to JSON for any
// value other than "text" or "console".
func New(cfg Config) (Logger, error) {
	levelVar.Set(parseLevel(cfg.Level))

	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			return redactSensitive(a)
		},
	}

	var h slog.Handler
	if f := strings.ToLower(cfg.Format); f == "text" || f == "console" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return &contactLogger{sl: slog.New(h), ctx: context.Background()}, nil
}

// SetLevel adjusts the global log level at runtime, e.g. after a
// config reload.
func SetLevel(level string) {
	levelVar.Set(parseLevel(level))
}

// GetLevel returns the current log level as a string.
func GetLevel() string {
	switch levelVar.Level() {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	default:
		return "info"
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *contactLogger) Debug(msg string, args ...any) { l.sl.DebugContext(l.ctx, msg, args...) }
func (l *contactLogger) Info(msg string, args ...any)  { l.sl.InfoContext(l.ctx, msg, args...) }
func (l *contactLogger) Warn(msg string, args ...any)  { l.sl.WarnContext(l.ctx, msg, args...) }
func (l *contactLogger) Error(msg string, args ...any) { l.sl.ErrorContext(l.ctx, msg, args...) }

func (l *contactLogger) With(args ...any) Logger {
	return &contactLogger{sl: l.sl.With(args...), ctx: l.ctx}
}

func (l *contactLogger) WithContext(ctx context.Context) Logger {
	return &contactLogger{sl: l.sl, ctx: ctx}
}

var defaultLogger atomic.Pointer[contactLogger]

func init() {
	l, _ := New(DefaultConfig())
	defaultLogger.Store(l.(*contactLogger))
}

// SetDefault installs l as the process-wide default logger. Loggers of
// other concrete types are ignored.
func SetDefault(l Logger) {
	if cl, ok := l.(*contactLogger); ok {
		defaultLogger.Store(cl)
	}
}

// Default returns the process-wide default logger.
func Default() Logger {
	return defaultLogger.Load()
}

// Debug logs at debug level using the default logger.
func Debug(msg string, args ...any) { defaultLogger.Load().Debug(msg, args...) }

// Info logs at info level using the default logger.
func Info(msg string, args ...any) { defaultLogger.Load().Info(msg, args...) }

// Warn logs at warn level using the default logger.
func Warn(msg string, args ...any) { defaultLogger.Load().Warn(msg, args...) }

// Error logs at error level using the default logger.
func Error(msg string, args ...any) { defaultLogger.Load().Error(msg, args...) }
