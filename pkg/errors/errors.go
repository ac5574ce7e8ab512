package errors

import (
	"fmt"
	"time"

	"mcp-textutils-service/internal/models"
)

// ErrorCategory represents different types of errors in the system
type ErrorCategory string

const (
	// MCP protocol related errors
	ErrorCategoryMCP ErrorCategory = "mcp"
	// Validation related errors
	ErrorCategoryValidation ErrorCategory = "validation"
	// Configuration related errors
	ErrorCategoryConfig ErrorCategory = "config"
	// System/internal errors
	ErrorCategorySystem ErrorCategory = "system"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	ErrorSeverityLow      ErrorSeverity = "low"
	ErrorSeverityMedium   ErrorSeverity = "medium"
	ErrorSeverityHigh     ErrorSeverity = "high"
	ErrorSeverityCritical ErrorSeverity = "critical"
)

// StructuredError represents a structured error with additional context.
// It is used for protocol and system level faults; tool-domain failures
// are typed textkit errors that surface to callers as plain text.
type StructuredError struct {
	Category    ErrorCategory          `json:"category"`
	Severity    ErrorSeverity          `json:"severity"`
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	Recoverable bool                   `json:"recoverable"`
	Cause       error                  `json:"-"` // Original error, not serialized
}

// Error implements the error interface
func (se *StructuredError) Error() string {
	if se.Details != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", se.Category, se.Code, se.Message, se.Details)
	}
	return fmt.Sprintf("[%s:%s] %s", se.Category, se.Code, se.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (se *StructuredError) Unwrap() error {
	return se.Cause
}

// ToMCPError converts a StructuredError to an MCP protocol error
func (se *StructuredError) ToMCPError() *models.MCPError {
	var mcpCode int
	switch se.Category {
	case ErrorCategoryValidation:
		mcpCode = -32602 // Invalid params
	case ErrorCategoryMCP:
		mcpCode = -32600 // Invalid request
	default:
		mcpCode = -32603 // Internal error
	}

	return &models.MCPError{
		Code:    mcpCode,
		Message: se.Message,
		Data: map[string]interface{}{
			"category":  se.Category,
			"code":      se.Code,
			"severity":  se.Severity,
			"timestamp": se.Timestamp,
			"context":   se.Context,
		},
	}
}

// NewStructuredError creates a new structured error
func NewStructuredError(category ErrorCategory, severity ErrorSeverity, code, message string) *StructuredError {
	return &StructuredError{
		Category:    category,
		Severity:    severity,
		Code:        code,
		Message:     message,
		Timestamp:   time.Now(),
		Recoverable: severity != ErrorSeverityCritical,
		Context:     make(map[string]interface{}),
	}
}

// WithDetails adds details to the error
func (se *StructuredError) WithDetails(details string) *StructuredError {
	se.Details = details
	return se
}

// WithContext adds context information to the error
func (se *StructuredError) WithContext(key string, value interface{}) *StructuredError {
	if se.Context == nil {
		se.Context = make(map[string]interface{})
	}
	se.Context[key] = value
	return se
}

// WithCause sets the underlying cause error
func (se *StructuredError) WithCause(err error) *StructuredError {
	se.Cause = err
	return se
}

// IsRecoverable returns whether the error is recoverable
func (se *StructuredError) IsRecoverable() bool {
	return se.Recoverable
}

// NewMCPError creates an MCP protocol related error
func NewMCPError(code, message string, err error) *StructuredError {
	return NewStructuredError(ErrorCategoryMCP, ErrorSeverityMedium, code, message).WithCause(err)
}

// NewValidationError creates a validation related error
func NewValidationError(code, message string, err error) *StructuredError {
	return NewStructuredError(ErrorCategoryValidation, ErrorSeverityLow, code, message).WithCause(err)
}

// NewConfigError creates a configuration related error. Missing required
// configuration at startup is the only fault allowed to abort the process.
func NewConfigError(code, message string, err error) *StructuredError {
	return NewStructuredError(ErrorCategoryConfig, ErrorSeverityCritical, code, message).WithCause(err)
}

// NewSystemError creates a system/internal error
func NewSystemError(code, message string, err error) *StructuredError {
	return NewStructuredError(ErrorCategorySystem, ErrorSeverityCritical, code, message).WithCause(err)
}

// Common error codes
const (
	// MCP protocol error codes
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeMethodNotFound = "METHOD_NOT_FOUND"
	ErrCodeInvalidParams  = "INVALID_PARAMS"

	// Configuration error codes
	ErrCodeMissingConfig = "MISSING_CONFIG"
	ErrCodeInvalidConfig = "INVALID_CONFIG"

	// System error codes
	ErrCodeInitializationFailed = "INITIALIZATION_FAILED"
	ErrCodeShutdownFailed       = "SHUTDOWN_FAILED"
	ErrCodeUnexpectedPanic      = "UNEXPECTED_PANIC"
)
