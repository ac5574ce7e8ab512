package tools

import (
	"context"
	"fmt"
	"strings"

	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/textkit"
)

// Base64ConverterTool encodes text to Base64 or decodes Base64 back to text
type Base64ConverterTool struct {
	logger *logging.StructuredLogger
}

// NewBase64ConverterTool creates a new Base64ConverterTool instance
func NewBase64ConverterTool(logger *logging.StructuredLogger) *Base64ConverterTool {
	return &Base64ConverterTool{logger: logger}
}

// Name returns the unique identifier for the tool
func (bct *Base64ConverterTool) Name() string {
	return "base64_converter"
}

// Description returns a human-readable description
func (bct *Base64ConverterTool) Description() string {
	return "Encode text to Base64 or decode Base64 to text"
}

// InputSchema returns JSON schema for tool parameters
func (bct *Base64ConverterTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to encode or Base64 string to decode",
				"maxLength":   MaxTextLength,
			},
			"operation": map[string]interface{}{
				"type":        "string",
				"description": "Operation: 'encode' or 'decode'",
			},
		},
		"required": []string{"text", "operation"},
	}
}

// Execute runs the requested Base64 operation. Unlike the other text tools,
// empty input is legal here: the empty string encodes to the empty string.
func (bct *Base64ConverterTool) Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	text := stringArg(arguments, "text", "")
	operation := strings.ToLower(stringArg(arguments, "operation", ""))

	converted, err := textkit.ConvertBase64(text, operation)
	if err != nil {
		return nil, err
	}

	bct.logger.WithContext("operation", operation).Debug("Base64 conversion complete")

	if operation == "encode" {
		return fmt.Sprintf(`✅ **BASE64 ENCODED**

**Original:** %s
**Encoded:** %s

📋 **Copy the encoded text above!**`, preview(text), converted), nil
	}

	return fmt.Sprintf(`✅ **BASE64 DECODED**

**Encoded:** %s
**Decoded:** %s

📋 **Copy the decoded text above!**`, preview(text), converted), nil
}
