// Package logger provides the levelled logging facility used across the
// engine. A package-level default logger is configured once from config;
// components derive prefixed loggers from it with Named.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the verbosity level of logging
type LogLevel int

// Available log levels
const (
	LevelNone  LogLevel = iota // No logging
	LevelError                 // Only errors
	LevelWarn                  // Warnings and errors
	LevelInfo                  // Informational messages, warnings, and errors
	LevelDebug                 // Everything
)

// Config holds configuration for the logger
type Config struct {
	Enabled bool
	Level   LogLevel
	Output  io.Writer
}

// sink is shared by the default logger and every Named logger so that a
// later Configure call reaches loggers created before it.
type sink struct {
	mu      sync.RWMutex
	enabled bool
	level   LogLevel
	out     *log.Logger
}

// Logger writes levelled messages with an optional component prefix
type Logger struct {
	sink      *sink
	component string
}

var defaultLogger = &Logger{sink: &sink{
	enabled: true,
	level:   LevelInfo,
	out:     log.New(os.Stdout, "", log.LstdFlags),
}}

// New creates a standalone logger with the provided configuration
func New(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	return &Logger{sink: &sink{
		enabled: config.Enabled,
		level:   config.Level,
		out:     log.New(output, "", log.LstdFlags),
	}}
}

// Configure reconfigures the default logger and every logger named from it
func Configure(config Config) {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	s := defaultLogger.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = config.Enabled
	s.level = config.Level
	s.out = log.New(output, "", log.LstdFlags)
}

// Named returns a logger sharing the default configuration whose messages
// carry the given component, e.g. "[WARN] [services] ...".
func Named(component string) *Logger {
	return defaultLogger.Named(component)
}

// Named derives a child logger; nested names are joined with a dot.
func (l *Logger) Named(component string) *Logger {
	if l.component != "" {
		component = l.component + "." + component
	}
	return &Logger{sink: l.sink, component: component}
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	if !l.sink.enabled || l.sink.level < level {
		return
	}
	prefix := "[" + level.String() + "] "
	if l.component != "" {
		prefix += "[" + l.component + "] "
	}
	l.sink.out.Printf(prefix+format, v...)
}

// Enabled reports whether a message at the given level would be written
func (l *Logger) Enabled(level LogLevel) bool {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return l.sink.enabled && l.sink.level >= level
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) { l.logf(LevelInfo, format, v...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) { l.logf(LevelWarn, format, v...) }

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

// Fatal logs a fatal error message and exits
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "FATAL: "+format, v...)
	// Even if logging is disabled, we still need to exit
	os.Exit(1)
}

// Debug logs a debug message on the default logger
func Debug(format string, v ...interface{}) { defaultLogger.Debug(format, v...) }

// Info logs an info message on the default logger
func Info(format string, v ...interface{}) { defaultLogger.Info(format, v...) }

// Warn logs a warning on the default logger
func Warn(format string, v ...interface{}) { defaultLogger.Warn(format, v...) }

// Error logs an error on the default logger
func Error(format string, v ...interface{}) { defaultLogger.Error(format, v...) }

// Fatal logs on the default logger and exits
func Fatal(format string, v ...interface{}) { defaultLogger.Fatal(format, v...) }

// String returns a string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("LogLevel(%d)", l)
	}
}

// LevelFromString converts a string to a LogLevel, defaulting to INFO
func LevelFromString(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "NONE":
		return LevelNone
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}
