package tools

import (
	"context"
	"fmt"
	"strings"

	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/textkit"
)

// ConvertCaseTool transforms text between naming and casing conventions
type ConvertCaseTool struct {
	logger *logging.StructuredLogger
}

// NewConvertCaseTool creates a new ConvertCaseTool instance
func NewConvertCaseTool(logger *logging.StructuredLogger) *ConvertCaseTool {
	return &ConvertCaseTool{logger: logger}
}

// Name returns the unique identifier for the tool
func (cct *ConvertCaseTool) Name() string {
	return "convert_case"
}

// Description returns a human-readable description
func (cct *ConvertCaseTool) Description() string {
	return "Convert text to different cases (upper, lower, title, camel, snake, kebab, etc.)"
}

// InputSchema returns JSON schema for tool parameters
func (cct *ConvertCaseTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to convert",
				"maxLength":   MaxTextLength,
			},
			"case_type": map[string]interface{}{
				"type":        "string",
				"description": "Case type: upper, lower, title, sentence, camel, pascal, snake, kebab, alternating",
			},
		},
		"required": []string{"text", "case_type"},
	}
}

// Execute applies the requested case transformation
func (cct *ConvertCaseTool) Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	text := stringArg(arguments, "text", "")
	caseType := strings.ToLower(stringArg(arguments, "case_type", ""))

	converted, err := textkit.ConvertCase(text, caseType)
	if err != nil {
		return nil, err
	}

	cct.logger.WithContext("case_type", caseType).Debug("Case converted")

	result := fmt.Sprintf(`✅ **%s CASE CONVERSION**

**Original:** %s
**Result:** %s

📋 **Copy the result above!**`,
		strings.ToUpper(caseType), preview(text), converted)

	return result, nil
}
