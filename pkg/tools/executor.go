// Package tools provides the tool registry and dispatcher for the text
// utilities service.
//
// Every tool is a pure, stateless transformation executed through the
// ToolExecutor, which enforces a shared execution timeout, checks argument
// types against the declared schema, and sanitizes arguments before they
// reach the logs. Required-field presence is deliberately left to each
// handler: a call without its text argument gets the same reported error a
// call with empty text gets.
package tools

import (
	"context"
	"fmt"
	"time"

	"mcp-textutils-service/pkg/errors"
	"mcp-textutils-service/pkg/logging"
)

const (
	// DefaultToolTimeout is the default execution timeout for tools.
	// Every tool here is a single-pass string transformation, so hitting
	// this means something is badly wrong.
	DefaultToolTimeout = 10 * time.Second

	// MaxTextLength caps text inputs to prevent resource exhaustion
	MaxTextLength = 100000 // 100KB
)

// ToolExecutor handles tool execution with validation, timeout, and
// sanitized logging
type ToolExecutor struct {
	maxExecutionTime time.Duration
	logger           *logging.StructuredLogger
	timeoutCallback  func() // Callback to notify manager of timeouts
}

// NewToolExecutor creates a new ToolExecutor with default settings
func NewToolExecutor(logger *logging.StructuredLogger) *ToolExecutor {
	return &ToolExecutor{
		maxExecutionTime: DefaultToolTimeout,
		logger:           logger,
	}
}

// SetMaxExecutionTime overrides the execution timeout
func (te *ToolExecutor) SetMaxExecutionTime(d time.Duration) {
	if d > 0 {
		te.maxExecutionTime = d
	}
}

// SetTimeoutCallback sets a callback function to be called when a timeout occurs
func (te *ToolExecutor) SetTimeoutCallback(callback func()) {
	te.timeoutCallback = callback
}

// Execute validates arguments and executes a tool with timeout protection
func (te *ToolExecutor) Execute(ctx context.Context, tool Tool, arguments map[string]interface{}) (interface{}, error) {
	if err := te.ValidateArguments(tool, arguments); err != nil {
		te.logger.WithContext("tool", tool.Name()).
			WithError(err).
			Warn("Tool argument validation failed")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, te.maxExecutionTime)
	defer cancel()

	// Log execution (with sanitized arguments)
	sanitized := te.sanitizeArguments(arguments)
	logger := te.logger.WithContext("tool", tool.Name())
	for k, v := range sanitized {
		logger = logger.WithContext(fmt.Sprintf("arg_%s", k), v)
	}
	logger.Info("Executing tool")

	result, err := tool.Execute(ctx, arguments)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			te.logger.WithContext("tool", tool.Name()).
				WithContext("timeout", te.maxExecutionTime.String()).
				Error("Tool execution timeout")

			if te.timeoutCallback != nil {
				te.timeoutCallback()
			}

			return nil, errors.NewSystemError(
				"TOOL_TIMEOUT",
				fmt.Sprintf("tool execution timeout after %s", te.maxExecutionTime),
				err,
			)
		}

		te.logger.WithContext("tool", tool.Name()).
			WithError(err).
			Debug("Tool reported an error")
		return nil, err
	}

	te.logger.WithContext("tool", tool.Name()).
		Info("Tool execution completed")

	return result, nil
}

// ValidateArguments checks provided argument values against the tool's
// input schema: type, maxLength, enum, minimum and maximum of fields that
// are present. Absent fields are not rejected here; each handler
// presence-checks its own required fields.
func (te *ToolExecutor) ValidateArguments(tool Tool, arguments map[string]interface{}) error {
	schema := tool.InputSchema()
	if schema == nil {
		return nil
	}

	properties, _ := schema["properties"].(map[string]interface{})
	for fieldName, value := range arguments {
		if propSchema, exists := properties[fieldName]; exists {
			if err := te.validateField(fieldName, value, propSchema); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateField validates a single field against its schema
func (te *ToolExecutor) validateField(fieldName string, value interface{}, schema interface{}) error {
	schemaMap, ok := schema.(map[string]interface{})
	if !ok {
		return nil
	}

	fieldType, _ := schemaMap["type"].(string)

	switch fieldType {
	case "string":
		strValue, ok := value.(string)
		if !ok {
			return errors.NewValidationError(
				errors.ErrCodeInvalidParams,
				fmt.Sprintf("field %s must be a string", fieldName),
				nil,
			)
		}

		if maxLength, exists := schemaNumber(schemaMap["maxLength"]); exists {
			if len(strValue) > int(maxLength) {
				return errors.NewValidationError(
					errors.ErrCodeInvalidParams,
					fmt.Sprintf("field %s exceeds maximum length of %d", fieldName, int(maxLength)),
					nil,
				)
			}
		}

		if enumValues := schemaEnum(schemaMap["enum"]); enumValues != nil {
			valid := false
			for _, enumValue := range enumValues {
				if enumValue == strValue {
					valid = true
					break
				}
			}
			if !valid {
				return errors.NewValidationError(
					errors.ErrCodeInvalidParams,
					fmt.Sprintf("field %s has invalid value, must be one of allowed values", fieldName),
					nil,
				)
			}
		}

	case "integer":
		var intValue int64
		switch v := value.(type) {
		case int:
			intValue = int64(v)
		case int64:
			intValue = v
		case float64:
			intValue = int64(v)
		default:
			return errors.NewValidationError(
				errors.ErrCodeInvalidParams,
				fmt.Sprintf("field %s must be an integer", fieldName),
				nil,
			)
		}

		if minimum, exists := schemaNumber(schemaMap["minimum"]); exists {
			if intValue < int64(minimum) {
				return errors.NewValidationError(
					errors.ErrCodeInvalidParams,
					fmt.Sprintf("field %s must be at least %d", fieldName, int64(minimum)),
					nil,
				)
			}
		}

		if maximum, exists := schemaNumber(schemaMap["maximum"]); exists {
			if intValue > int64(maximum) {
				return errors.NewValidationError(
					errors.ErrCodeInvalidParams,
					fmt.Sprintf("field %s must be at most %d", fieldName, int64(maximum)),
					nil,
				)
			}
		}

	case "boolean":
		if _, ok := value.(bool); !ok {
			return errors.NewValidationError(
				errors.ErrCodeInvalidParams,
				fmt.Sprintf("field %s must be a boolean", fieldName),
				nil,
			)
		}
	}

	return nil
}

// schemaNumber reads a numeric schema constraint, which may be an int (when
// the schema is built in code) or a float64 (when it was decoded from JSON)
func schemaNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// schemaEnum reads an enum constraint as a string slice, accepting both the
// in-code and JSON-decoded representations
func schemaEnum(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		return values
	default:
		return nil
	}
}

// sanitizeArguments sanitizes arguments for logging: large text inputs are
// truncated to a preview and anything named like a credential is masked, so
// neither tokens nor whole documents end up in the log stream.
func (te *ToolExecutor) sanitizeArguments(arguments map[string]interface{}) map[string]interface{} {
	const maxLogLength = 100

	sanitized := make(map[string]interface{})
	for key, value := range arguments {
		if key == "token" {
			sanitized[key] = "[REDACTED]"
			continue
		}
		if strValue, ok := value.(string); ok && len(strValue) > maxLogLength {
			sanitized[key] = fmt.Sprintf("%s... [%d chars]", strValue[:maxLogLength], len(strValue))
		} else {
			sanitized[key] = value
		}
	}
	return sanitized
}
