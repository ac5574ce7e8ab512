package tools

import (
	"context"
	"fmt"
	"strings"

	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/textkit"
)

// categoryDisplayCap limits how many matches are listed per category; the
// remainder is summarized as a count
const categoryDisplayCap = 10

// ExtractDataTool pulls emails, URLs, and phone numbers out of free text
type ExtractDataTool struct {
	logger *logging.StructuredLogger
}

// NewExtractDataTool creates a new ExtractDataTool instance
func NewExtractDataTool(logger *logging.StructuredLogger) *ExtractDataTool {
	return &ExtractDataTool{logger: logger}
}

// Name returns the unique identifier for the tool
func (edt *ExtractDataTool) Name() string {
	return "extract_data"
}

// Description returns a human-readable description
func (edt *ExtractDataTool) Description() string {
	return "Extract emails, URLs, or phone numbers from text"
}

// InputSchema returns JSON schema for tool parameters
func (edt *ExtractDataTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to search through",
				"maxLength":   MaxTextLength,
			},
			"data_type": map[string]interface{}{
				"type":        "string",
				"description": "What to extract: 'emails', 'urls', 'phones', or 'all'",
			},
		},
		"required": []string{"text", "data_type"},
	}
}

// Execute runs the extraction and formats the per-category report
func (edt *ExtractDataTool) Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	text := stringArg(arguments, "text", "")
	dataType := strings.ToLower(stringArg(arguments, "data_type", ""))

	extraction, err := textkit.Extract(text, dataType)
	if err != nil {
		return nil, err
	}

	edt.logger.WithContext("data_type", dataType).
		WithContext("total_found", extraction.Total()).
		Debug("Data extracted")

	var b strings.Builder
	b.WriteString("🔍 **EXTRACTED DATA**\n")
	writeCategory(&b, "📧", "emails", extraction.Emails)
	writeCategory(&b, "🔗", "urls", extraction.URLs)
	writeCategory(&b, "📱", "phones", extraction.Phones)
	fmt.Fprintf(&b, "\n✅ **Total found:** %d items", extraction.Total())

	return b.String(), nil
}

// writeCategory appends one category section, capped at categoryDisplayCap
// listed items. Empty categories are omitted entirely.
func writeCategory(b *strings.Builder, emoji, category string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s **%s** (%d found):\n", emoji, strings.ToUpper(category), len(items))
	for i, item := range items {
		if i == categoryDisplayCap {
			fmt.Fprintf(b, "• ... and %d more\n", len(items)-categoryDisplayCap)
			break
		}
		fmt.Fprintf(b, "• %s\n", item)
	}
}
