// Package log is a small leveled logger that appends to a private file.
// Dispatch decisions, store queries and command faults end up here; nothing
// is ever printed to the terminal.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes timestamped lines and is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	minLevel Level
	enabled  bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init sets up the package-level logger. Only the first call has an effect.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err == nil {
			defaultLoggerMu.Lock()
			defaultLogger = l
			defaultLoggerMu.Unlock()
		}
	})
	return err
}

// New opens logPath for appending, creating it and its directory with
// owner-only permissions.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewTo(file, minLevel)
	l.closer = file
	return l, nil
}

// NewTo returns a logger writing to w. Close does not close w.
func NewTo(w io.Writer, minLevel Level) *Logger {
	return &Logger{out: w, minLevel: minLevel, enabled: true}
}

// Close closes the underlying file, if the logger owns one.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.closer.Close()
	l.closer = nil
	l.enabled = false
	return err
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, prefix, format string, args ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s%s\n", time.Now().Format("2006-01-02 15:04:05"), level, prefix, message)

	if _, err := io.WriteString(l.out, line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, "", format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, "", format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, "", format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, "", format, args...) }

// Named returns a view of l that tags every line with component.
func (l *Logger) Named(component string) domain.Logger {
	return &named{logger: l, prefix: component + ": "}
}

type named struct {
	logger *Logger
	prefix string
}

func (n *named) Debug(format string, args ...any) { n.logger.log(LevelDebug, n.prefix, format, args...) }
func (n *named) Info(format string, args ...any)  { n.logger.log(LevelInfo, n.prefix, format, args...) }
func (n *named) Warn(format string, args ...any)  { n.logger.log(LevelWarn, n.prefix, format, args...) }
func (n *named) Error(format string, args ...any) { n.logger.log(LevelError, n.prefix, format, args...) }

// Close is a no-op; the parent logger owns the file.
func (n *named) Close() error { return nil }

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "", "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug logs to the package-level logger, if one was initialised.
func Debug(format string, args ...any) { current().Debug(format, args...) }

// Info logs to the package-level logger, if one was initialised.
func Info(format string, args ...any) { current().Info(format, args...) }

// Warn logs to the package-level logger, if one was initialised.
func Warn(format string, args ...any) { current().Warn(format, args...) }

// Error logs to the package-level logger, if one was initialised.
func Error(format string, args ...any) { current().Error(format, args...) }

// Close closes the package-level logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the package-level logger, or nil before Init.
func GetLogger() *Logger {
	return current()
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = (*named)(nil)
	_ domain.Logger = NopLogger{}
)
