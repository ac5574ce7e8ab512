package logging

import (
	"strings"
	"sync"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the textual form of the level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// LoggingManager manages structured logging across the application
type LoggingManager struct {
	loggers map[string]*StructuredLogger
	mutex   sync.RWMutex

	// Global context that gets added to all log entries
	globalContext LogContext

	// Statistics
	stats LoggingStats

	// Log level for filtering
	logLevel LogLevel
}

// LoggingStats tracks logging statistics
type LoggingStats struct {
	TotalMessages    int64            `json:"totalMessages"`
	MessagesByLevel  map[string]int64 `json:"messagesByLevel"`
	MessagesByLogger map[string]int64 `json:"messagesByLogger"`
	ErrorCount       int64            `json:"errorCount"`
	LastLogTime      time.Time        `json:"lastLogTime"`
}

// NewLoggingManager creates a new logging manager
func NewLoggingManager() *LoggingManager {
	return &LoggingManager{
		loggers:       make(map[string]*StructuredLogger),
		globalContext: make(LogContext),
		stats: LoggingStats{
			MessagesByLevel:  make(map[string]int64),
			MessagesByLogger: make(map[string]int64),
		},
		logLevel: LogLevelInfo,
	}
}

// GetLogger gets or creates a logger for a specific component
func (lm *LoggingManager) GetLogger(component string) *StructuredLogger {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	if logger, exists := lm.loggers[component]; exists {
		return logger
	}

	logger := NewStructuredLogger(component)
	logger.manager = lm

	for key, value := range lm.globalContext {
		logger = logger.WithContext(key, value)
	}

	lm.loggers[component] = logger
	return logger
}

// SetLogLevel sets the logging level for all loggers.
// Accepts any string and defaults to INFO for invalid levels.
func (lm *LoggingManager) SetLogLevel(level string) {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	switch strings.ToUpper(level) {
	case "DEBUG":
		lm.logLevel = LogLevelDebug
	case "WARN":
		lm.logLevel = LogLevelWarn
	case "ERROR":
		lm.logLevel = LogLevelError
	default:
		lm.logLevel = LogLevelInfo
	}
}

// shouldLog checks if a message at the given level should be logged
func (lm *LoggingManager) shouldLog(level LogLevel) bool {
	lm.mutex.RLock()
	defer lm.mutex.RUnlock()
	return level >= lm.logLevel
}

// SetGlobalContext sets global context that will be added to all log entries
func (lm *LoggingManager) SetGlobalContext(key string, value interface{}) {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	lm.globalContext[key] = value

	for component, logger := range lm.loggers {
		lm.loggers[component] = logger.WithContext(key, value)
	}
}

// GetGlobalContext returns a copy of the global context
func (lm *LoggingManager) GetGlobalContext() LogContext {
	lm.mutex.RLock()
	defer lm.mutex.RUnlock()

	context := make(LogContext)
	for k, v := range lm.globalContext {
		context[k] = v
	}
	return context
}

// LogMCPRequest logs MCP protocol requests with timing
func (lm *LoggingManager) LogMCPRequest(method string, requestID interface{}, duration time.Duration, success bool, errorMsg string) {
	logger := lm.GetLogger("mcp_protocol")

	if !success && errorMsg != "" {
		logger = logger.WithContext("error_message", errorMsg)
	}

	logger.LogMCPMessage(method, requestID, duration, success)
}

// LogToolInvocation logs a tool dispatch with its outcome
func (lm *LoggingManager) LogToolInvocation(toolName string, duration time.Duration, success bool) {
	logger := lm.GetLogger("tools").
		WithContext("tool", toolName).
		WithContext("duration_ms", duration.Milliseconds()).
		WithContext("success", success)

	if success {
		logger.Info("Tool invocation completed")
	} else {
		logger.Warn("Tool invocation failed")
	}
}

// LogError logs an error with full context
func (lm *LoggingManager) LogError(component string, err error, message string, context map[string]interface{}) {
	logger := lm.GetLogger(component).WithError(err)

	for k, v := range context {
		logger = logger.WithContext(k, v)
	}

	logger.Error(message)
}

// LogStartupSequence logs application startup sequence
func (lm *LoggingManager) LogStartupSequence(phase string, details map[string]interface{}, duration time.Duration, success bool) {
	logger := lm.GetLogger("startup")

	startupDetails := make(map[string]interface{})
	for k, v := range details {
		startupDetails[k] = v
	}
	startupDetails["duration_ms"] = duration.Milliseconds()
	startupDetails["success"] = success

	logger.LogStartup(phase, startupDetails)
}

// LogShutdownSequence logs application shutdown sequence
func (lm *LoggingManager) LogShutdownSequence(phase string, details map[string]interface{}, duration time.Duration, success bool) {
	logger := lm.GetLogger("shutdown")

	shutdownDetails := make(map[string]interface{})
	for k, v := range details {
		shutdownDetails[k] = v
	}
	shutdownDetails["duration_ms"] = duration.Milliseconds()
	shutdownDetails["success"] = success

	logger.LogShutdown(phase, shutdownDetails)
}

// updateStats updates logging statistics
func (lm *LoggingManager) updateStats(component, level string) {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	lm.stats.TotalMessages++
	lm.stats.MessagesByLevel[level]++
	lm.stats.MessagesByLogger[component]++
	lm.stats.LastLogTime = time.Now()

	if level == "ERROR" {
		lm.stats.ErrorCount++
	}
}

// GetStats returns current logging statistics
func (lm *LoggingManager) GetStats() LoggingStats {
	lm.mutex.RLock()
	defer lm.mutex.RUnlock()

	stats := LoggingStats{
		TotalMessages:    lm.stats.TotalMessages,
		ErrorCount:       lm.stats.ErrorCount,
		LastLogTime:      lm.stats.LastLogTime,
		MessagesByLevel:  make(map[string]int64),
		MessagesByLogger: make(map[string]int64),
	}

	for k, v := range lm.stats.MessagesByLevel {
		stats.MessagesByLevel[k] = v
	}
	for k, v := range lm.stats.MessagesByLogger {
		stats.MessagesByLogger[k] = v
	}

	return stats
}

// GetLoggerNames returns the names of all registered loggers
func (lm *LoggingManager) GetLoggerNames() []string {
	lm.mutex.RLock()
	defer lm.mutex.RUnlock()

	names := make([]string, 0, len(lm.loggers))
	for name := range lm.loggers {
		names = append(names, name)
	}
	return names
}

// ResetStats resets logging statistics
func (lm *LoggingManager) ResetStats() {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	lm.stats = LoggingStats{
		MessagesByLevel:  make(map[string]int64),
		MessagesByLogger: make(map[string]int64),
	}
}
