package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level represents the minimum severity the logger will emit
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a leveled logger writing to a file, stdout, or both.
// Every package in the service depends on a local Logger interface with the
// Info/Warn/Error subset; this is the single concrete implementation.
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New creates a logger. When filePath is empty, output goes to stdout only;
// otherwise it goes to both stdout and the file (parent directories are created).
func New(filePath, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	writer := io.Writer(os.Stdout)
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.file = f
		writer = io.MultiWriter(os.Stdout, f)
	}

	l.out = log.New(writer, "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
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

func (l *Logger) logf(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(tag+" "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "[DEBUG]", format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "[INFO]", format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "[WARN]", format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "[ERROR]", format, v...)
}

// Fatal logs at error level and terminates the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "[FATAL]", format, v...)
	l.Close()
	os.Exit(1)
}

// Close releases the underlying log file, if any
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}
