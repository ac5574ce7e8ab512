package tools

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/textkit"
)

// CleanTextTool normalizes whitespace in text using one of three modes
type CleanTextTool struct {
	logger *logging.StructuredLogger
}

// NewCleanTextTool creates a new CleanTextTool instance
func NewCleanTextTool(logger *logging.StructuredLogger) *CleanTextTool {
	return &CleanTextTool{logger: logger}
}

// Name returns the unique identifier for the tool
func (ctt *CleanTextTool) Name() string {
	return "clean_text"
}

// Description returns a human-readable description
func (ctt *CleanTextTool) Description() string {
	return "Clean text by removing extra spaces, fixing line breaks, and standardizing formatting"
}

// InputSchema returns JSON schema for tool parameters
func (ctt *CleanTextTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to clean",
				"maxLength":   MaxTextLength,
			},
			"mode": map[string]interface{}{
				"type":        "string",
				"description": "Cleaning mode: basic, aggressive, or normalize",
				"default":     "basic",
			},
		},
		"required": []string{"text"},
	}
}

// Execute cleans the text and reports how many characters were removed
func (ctt *CleanTextTool) Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	text := stringArg(arguments, "text", "")
	mode := stringArg(arguments, "mode", "basic")

	cleaned, err := textkit.Clean(text, mode)
	if err != nil {
		return nil, err
	}

	originalLength := utf8.RuneCountInString(text)
	cleanedLength := utf8.RuneCountInString(cleaned)
	saved := originalLength - cleanedLength
	savedPercent := float64(saved) / float64(originalLength) * 100

	ctt.logger.WithContext("mode", mode).
		WithContext("saved_chars", saved).
		Debug("Text cleaned")

	result := fmt.Sprintf(`✅ **TEXT CLEANED (%s MODE)**

📊 **Statistics:**
• Original length: %s characters
• Cleaned length: %s characters
• Saved: %s characters (%s%%)

**Cleaned text:**
%s

📋 **Copy the cleaned text above!**`,
		strings.ToUpper(mode),
		formatInt(originalLength),
		formatInt(cleanedLength),
		formatInt(saved),
		formatFloat(savedPercent),
		cleaned)

	return result, nil
}
