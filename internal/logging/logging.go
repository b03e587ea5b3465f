// Package logging provides structured logging for RIE commands.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Level represents the severity of a log message
type Level string

const (
	// DebugLevel for debug messages
	DebugLevel Level = "debug"
	// InfoLevel for informational messages
	InfoLevel Level = "info"
	// WarnLevel for warning messages
	WarnLevel Level = "warn"
	// ErrorLevel for error messages
	ErrorLevel Level = "error"
)

var levelPriority = map[Level]int{
	DebugLevel: 0,
	InfoLevel:  1,
	WarnLevel:  2,
	ErrorLevel: 3,
}

// Format represents the output format for logs
type Format string

const (
	// JSONFormat outputs logs as JSON
	JSONFormat Format = "json"
	// HumanFormat outputs logs in human-readable format
	HumanFormat Format = "human"
)

// Config holds logger configuration
type Config struct {
	Format Format
	Level  Level
	Output io.Writer // Optional, defaults to stderr
}

// Logger provides structured logging with key-value fields
type Logger struct {
	config Config
	writer io.Writer
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) *Logger {
	writer := config.Output
	if writer == nil {
		writer = os.Stderr
	}
	if config.Level == "" {
		config.Level = InfoLevel
	}

	return &Logger{
		config: config,
		writer: writer,
	}
}

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func (l *Logger) enabled(level Level) bool {
	return levelPriority[level] >= levelPriority[l.config.Level]
}

// log accepts alternating key-value pairs after the message. A trailing key
// without a value is recorded as-is.
func (l *Logger) log(level Level, message string, kvs ...any) {
	if !l.enabled(level) {
		return
	}

	var fields map[string]any
	if len(kvs) > 0 {
		fields = make(map[string]any, len(kvs)/2)
		for i := 0; i < len(kvs); i += 2 {
			key := fmt.Sprintf("%v", kvs[i])
			if i+1 < len(kvs) {
				fields[key] = kvs[i+1]
			} else {
				fields[key] = "(missing)"
			}
		}
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}

	if l.config.Format == JSONFormat {
		data, err := json.Marshal(e)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to marshal log entry: %v\n", err)
			return
		}
		_, _ = fmt.Fprintln(l.writer, string(data))
		return
	}

	_, _ = fmt.Fprintf(l.writer, "%s [%s] %s", e.Timestamp, e.Level, e.Message)
	if len(e.Fields) > 0 {
		_, _ = fmt.Fprint(l.writer, " |")
		for i := 0; i < len(kvs); i += 2 {
			key := fmt.Sprintf("%v", kvs[i])
			_, _ = fmt.Fprintf(l.writer, " %s=%v", key, e.Fields[key])
		}
	}
	_, _ = fmt.Fprintln(l.writer)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, kvs ...any) {
	l.log(DebugLevel, message, kvs...)
}

// Info logs an info message
func (l *Logger) Info(message string, kvs ...any) {
	l.log(InfoLevel, message, kvs...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, kvs ...any) {
	l.log(WarnLevel, message, kvs...)
}

// Error logs an error message
func (l *Logger) Error(message string, kvs ...any) {
	l.log(ErrorLevel, message, kvs...)
}
