// Package logging provides structured logging for vtext.
//
// Loggers wrap log/slog. When a log file is configured, output goes to a
// rotating file through lumberjack because the terminal belongs to the
// editor. Otherwise output goes to the configured writer or stderr.
//
// Recent warnings and errors are kept in a small ring so the application
// can report them after the terminal is released.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ValidLevel reports whether s names a level.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures a logger.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// File is the path of a rotating log file. Empty means Output.
	File string

	// Rotation limits for File.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Output is used when File is empty. Defaults to os.Stderr.
	Output io.Writer

	// JSON selects the JSON handler instead of the text handler.
	JSON bool
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:      LevelInfo,
		Output:     os.Stderr,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// shared is the state common to a logger and everything derived from it.
type shared struct {
	level    slog.LevelVar
	disabled atomic.Bool
	closer   io.Closer
	recent   *ring
}

// Logger provides structured logging.
type Logger struct {
	sl    *slog.Logger
	state *shared
}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	st := &shared{recent: newRing(recentSize)}
	st.level.Set(cfg.Level.slog())

	var w io.Writer
	switch {
	case cfg.File != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		st.closer = lj
		w = lj
	case cfg.Output != nil:
		w = cfg.Output
	default:
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: &st.level}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		sl:    slog.New(&captureHandler{inner: h, state: st}),
		state: st,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	l := New(Config{Output: io.Discard})
	l.Disable()
	return l
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{sl: l.sl.With(key, value), state: l.state}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{sl: l.sl.With(args...), state: l.state}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level for this logger and every logger
// derived from it.
func (l *Logger) SetLevel(level Level) {
	l.state.level.Set(level.slog())
}

// Disable disables all logging.
func (l *Logger) Disable() { l.state.disabled.Store(true) }

// Enable enables logging.
func (l *Logger) Enable() { l.state.disabled.Store(false) }

// Debug logs a debug message with key-value pairs.
func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }

// Info logs an info message with key-value pairs.
func (l *Logger) Info(msg string, args ...any) { l.log(slog.LevelInfo, msg, args) }

// Warn logs a warning message with key-value pairs.
func (l *Logger) Warn(msg string, args ...any) { l.log(slog.LevelWarn, msg, args) }

// Error logs an error message with key-value pairs.
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

func (l *Logger) log(level slog.Level, msg string, args []any) {
	if l.state.disabled.Load() {
		return
	}
	l.sl.Log(context.Background(), level, msg, args...)
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger {
	return l.sl
}

// Recent returns the most recent warnings and errors, oldest first.
func (l *Logger) Recent() []Entry {
	return l.state.recent.all()
}

// Counts returns the number of warnings and errors logged so far.
func (l *Logger) Counts() (warn, err int) {
	return l.state.recent.counts()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.state.closer == nil {
		return nil
	}
	return l.state.closer.Close()
}

// captureHandler records warnings and errors before passing records on.
type captureHandler struct {
	inner slog.Handler
	state *shared
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.state.recent.add(Entry{Time: r.Time, Level: r.Level, Message: r.Message})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), state: h.state}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), state: h.state}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, creating a stderr logger on
// first use.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(DefaultConfig())
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger and makes it the slog
// default as well.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	slog.SetDefault(l.Slog())
}
