package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"mcp-textutils-service/pkg/errors"
)

// LogContext represents contextual information for log entries
type LogContext map[string]interface{}

// StructuredLogger provides structured logging capabilities.
// Output goes to stderr: stdout is reserved for the JSON-RPC protocol stream.
type StructuredLogger struct {
	logger    *slog.Logger
	component string
	context   LogContext
	manager   *LoggingManager
}

// NewStructuredLogger creates a new structured logger writing to stderr
func NewStructuredLogger(component string) *StructuredLogger {
	return newStructuredLoggerTo(os.Stderr, component)
}

// newStructuredLoggerTo creates a structured logger with a custom sink (used in tests)
func newStructuredLoggerTo(w io.Writer, component string) *StructuredLogger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(time.Now().UTC().Format(time.RFC3339Nano)),
				}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{Key: "level", Value: a.Value}
			}
			if a.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: a.Value}
			}
			return a
		},
	}

	return &StructuredLogger{
		logger:    slog.New(slog.NewJSONHandler(w, opts)),
		component: component,
		context:   make(LogContext),
	}
}

// WithContext adds context to the logger (returns a new logger instance)
func (sl *StructuredLogger) WithContext(key string, value interface{}) *StructuredLogger {
	newLogger := &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context:   make(LogContext),
		manager:   sl.manager,
	}

	for k, v := range sl.context {
		newLogger.context[k] = v
	}

	newLogger.context[key] = value
	return newLogger
}

// WithError adds error information to the logger context
func (sl *StructuredLogger) WithError(err error) *StructuredLogger {
	if err == nil {
		return sl
	}

	newLogger := sl.WithContext("error", err.Error())

	if structuredErr, ok := err.(*errors.StructuredError); ok {
		newLogger = newLogger.
			WithContext("error_category", structuredErr.Category).
			WithContext("error_code", structuredErr.Code).
			WithContext("error_severity", structuredErr.Severity).
			WithContext("error_recoverable", structuredErr.IsRecoverable())

		for k, v := range structuredErr.Context {
			newLogger = newLogger.WithContext(fmt.Sprintf("error_ctx_%s", k), v)
		}
	}

	return newLogger
}

// buildLogAttributes creates slog attributes from context
func (sl *StructuredLogger) buildLogAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("component", sl.component),
	}

	for key, value := range sl.context {
		attrs = append(attrs, slog.Any(key, sanitizeValue(key, value)))
	}

	return attrs
}

func (sl *StructuredLogger) log(level LogLevel, slogLevel slog.Level, message string) {
	if sl.manager != nil && !sl.manager.shouldLog(level) {
		return
	}
	sl.logger.LogAttrs(context.Background(), slogLevel, message, sl.buildLogAttributes()...)
	if sl.manager != nil {
		sl.manager.updateStats(sl.component, level.String())
	}
}

// Debug logs a debug message
func (sl *StructuredLogger) Debug(message string) {
	sl.log(LogLevelDebug, slog.LevelDebug, message)
}

// Info logs an info message
func (sl *StructuredLogger) Info(message string) {
	sl.log(LogLevelInfo, slog.LevelInfo, message)
}

// Warn logs a warning message
func (sl *StructuredLogger) Warn(message string) {
	sl.log(LogLevelWarn, slog.LevelWarn, message)
}

// Error logs an error message
func (sl *StructuredLogger) Error(message string) {
	sl.log(LogLevelError, slog.LevelError, message)
}

// LogMCPMessage logs an MCP protocol message with timing information
func (sl *StructuredLogger) LogMCPMessage(method string, requestID interface{}, duration time.Duration, success bool) {
	logger := sl.WithContext("mcp_method", method).
		WithContext("request_id", requestID).
		WithContext("duration_ms", duration.Milliseconds()).
		WithContext("success", success)

	if success {
		logger.Info("MCP message processed successfully")
	} else {
		logger.Warn("MCP message processing failed")
	}
}

// LogStartup logs application startup events
func (sl *StructuredLogger) LogStartup(event string, details map[string]interface{}) {
	logger := sl.WithContext("startup_event", event)
	for k, v := range details {
		logger = logger.WithContext(k, v)
	}
	logger.Info("Application startup event")
}

// LogShutdown logs application shutdown events
func (sl *StructuredLogger) LogShutdown(event string, details map[string]interface{}) {
	logger := sl.WithContext("shutdown_event", event)
	for k, v := range details {
		logger = logger.WithContext(k, v)
	}
	logger.Info("Application shutdown event")
}

// LogFileSystemEvent logs configuration file monitoring events
func (sl *StructuredLogger) LogFileSystemEvent(eventType string, path string, details map[string]interface{}) {
	logger := sl.WithContext("fs_event_type", eventType).
		WithContext("fs_path", path)

	for k, v := range details {
		logger = logger.WithContext(k, v)
	}

	logger.Info("File system event detected")
}

// LogSecurityEvent logs security-related events (without sensitive data)
func (sl *StructuredLogger) LogSecurityEvent(eventType string, details map[string]interface{}) {
	logger := sl.WithContext("security_event", eventType)

	sanitizedDetails := sanitizeLogData(details)
	for k, v := range sanitizedDetails {
		logger = logger.WithContext(k, v)
	}

	logger.Warn("Security event detected")
}

// sensitiveKeys are key substrings whose values must never reach the log sink.
var sensitiveKeys = []string{
	"password", "token", "secret", "key", "auth", "credential",
	"private", "confidential", "sensitive",
}

// sanitizeLogData removes or masks sensitive information from log data
func sanitizeLogData(data map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{})
	for k, v := range data {
		sanitized[k] = sanitizeValue(k, v)
	}
	return sanitized
}

// sanitizeValue masks a single value when its key looks sensitive
func sanitizeValue(key string, value interface{}) interface{} {
	keyLower := strings.ToLower(key)
	for _, sensitiveKey := range sensitiveKeys {
		if strings.Contains(keyLower, sensitiveKey) {
			return "[REDACTED]"
		}
	}
	if str, ok := value.(string); ok {
		return sanitizeStringValue(str)
	}
	return value
}

// sanitizeStringValue masks values that look like tokens or keys
func sanitizeStringValue(value string) interface{} {
	if len(value) > 20 && isAlphanumeric(value) {
		return fmt.Sprintf("[MASKED:%d_chars]", len(value))
	}
	return value
}

// isAlphanumeric checks if a string contains only alphanumeric characters
func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
