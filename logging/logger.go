// Package logging provides structured JSON logging for the site server.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config value such as "warn" to a Level. Unknown values
// fall back to INFO.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Entry represents a single log entry with structured fields.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Site      string         `json:"site,omitempty"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Duration  *int64         `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger is a structured logger that writes to multiple outputs.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	writers  []io.Writer
	site     string
	now      func() time.Time
}

// New creates a Logger tagged with site that drops entries below minLevel.
func New(site string, minLevel Level, writers ...io.Writer) *Logger {
	return &Logger{
		minLevel: minLevel,
		writers:  writers,
		site:     site,
		now:      time.Now,
	}
}

// Discard returns a logger that writes nowhere.
func Discard() *Logger {
	return New("", ERROR+1)
}

// Log writes a log entry at the specified level.
func (l *Logger) Log(level Level, category, message string, fields map[string]any) {
	if l == nil || level < l.minLevel {
		return
	}
	l.write(l.entry(level, category, message, fields))
}

// Debug logs a debug message.
func (l *Logger) Debug(category, message string, fields map[string]any) {
	l.Log(DEBUG, category, message, fields)
}

// Info logs an info message.
func (l *Logger) Info(category, message string, fields map[string]any) {
	l.Log(INFO, category, message, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, message string, fields map[string]any) {
	l.Log(WARN, category, message, fields)
}

// Error logs an error message.
func (l *Logger) Error(category, message string, err error, fields map[string]any) {
	if l == nil || ERROR < l.minLevel {
		return
	}
	entry := l.entry(ERROR, category, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	l.write(entry)
}

func (l *Logger) entry(level Level, category, message string, fields map[string]any) Entry {
	return Entry{
		Timestamp: l.now().UTC(),
		Level:     level.String(),
		Site:      l.site,
		Category:  category,
		Message:   message,
		Fields:    fields,
	}
}

func (l *Logger) write(entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal log entry: %v\n", err)
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.writers {
		_, _ = w.Write(data)
	}
}

type requestIDKey struct{}

// ContextWithRequestID stores the request ID assigned by the HTTP middleware.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFrom returns the request ID stored in ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogContext carries a request ID and category across several log calls.
type LogContext struct {
	logger    *Logger
	requestID string
	category  string
	fields    map[string]any
}

// WithRequestID creates a logging context with a request ID.
func (l *Logger) WithRequestID(requestID string) *LogContext {
	return &LogContext{
		logger:    l,
		requestID: requestID,
		fields:    make(map[string]any),
	}
}

// FromContext creates a logging context using the request ID in ctx.
func (l *Logger) FromContext(ctx context.Context) *LogContext {
	return l.WithRequestID(RequestIDFrom(ctx))
}

// WithCategory sets the category for this context.
func (c *LogContext) WithCategory(category string) *LogContext {
	c.category = category
	return c
}

// WithField adds a field to this context.
func (c *LogContext) WithField(key string, value any) *LogContext {
	c.fields[key] = value
	return c
}

// Info logs an info message with the context's request ID and fields.
func (c *LogContext) Info(message string) {
	c.log(INFO, message, nil)
}

// Warn logs a warning message with the context's request ID and fields.
func (c *LogContext) Warn(message string) {
	c.log(WARN, message, nil)
}

// Error logs an error message with the context's request ID and fields.
func (c *LogContext) Error(message string, err error) {
	c.log(ERROR, message, err)
}

func (c *LogContext) log(level Level, message string, err error) {
	if c.logger == nil || level < c.logger.minLevel {
		return
	}
	entry := c.logger.entry(level, c.category, message, c.fields)
	entry.RequestID = c.requestID
	if err != nil {
		entry.Error = err.Error()
	}
	c.logger.write(entry)
}
