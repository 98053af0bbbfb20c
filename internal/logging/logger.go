// Package logging is a small leveled file logger. The TUI owns the
// terminal, so everything goes to a log file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity.
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

// Logger writes timestamped leveled lines to a single writer.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	enabled  bool
	filePath string
}

var defaultLogger *Logger

// Initialize opens a dated log file under logDir and installs it as the
// default logger.
func Initialize(logDir string, level Level) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	logPath := filepath.Join(logDir, fmt.Sprintf("dropdeck-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defaultLogger = &Logger{
		writer:   file,
		level:    level,
		enabled:  true,
		filePath: logPath,
	}
	return nil
}

// SetEnabled enables or disables the default logger.
func SetEnabled(enabled bool) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defaultLogger.enabled = enabled
	defaultLogger.mu.Unlock()
}

// SetLevel adjusts the minimum severity that gets written.
func SetLevel(level Level) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defaultLogger.level = level
	defaultLogger.mu.Unlock()
}

func log(level Level, format string, args ...any) {
	l := defaultLogger
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.level {
		return
	}
	line := fmt.Sprintf("[%s] %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		level.String(),
		fmt.Sprintf(format, args...))
	l.writer.Write([]byte(line))
}

// Debug logs a debug message.
func Debug(format string, args ...any) { log(LevelDebug, format, args...) }

// Info logs an info message.
func Info(format string, args ...any) { log(LevelInfo, format, args...) }

// Warn logs a warning message.
func Warn(format string, args ...any) { log(LevelWarn, format, args...) }

// Error logs an error message.
func Error(format string, args ...any) { log(LevelError, format, args...) }

// WithError logs a non-nil error with context.
func WithError(err error, context string) {
	if err != nil {
		log(LevelError, "%s: %v", context, err)
	}
}

// Close closes the log file.
func Close() error {
	if defaultLogger == nil {
		return nil
	}
	if closer, ok := defaultLogger.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Path returns the current log file path.
func Path() string {
	if defaultLogger == nil {
		return ""
	}
	return defaultLogger.filePath
}
