package tools

import (
	"context"
	"fmt"

	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/textkit"
)

// CountTextTool reports character, word, sentence, paragraph, and line
// counts for a piece of text, plus derived readability figures
type CountTextTool struct {
	logger *logging.StructuredLogger
}

// NewCountTextTool creates a new CountTextTool instance
func NewCountTextTool(logger *logging.StructuredLogger) *CountTextTool {
	return &CountTextTool{logger: logger}
}

// Name returns the unique identifier for the tool
func (ctt *CountTextTool) Name() string {
	return "count_text"
}

// Description returns a human-readable description
func (ctt *CountTextTool) Description() string {
	return "Count words, characters, sentences, and paragraphs in text"
}

// InputSchema returns JSON schema for tool parameters
func (ctt *CountTextTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to analyze",
				"maxLength":   MaxTextLength,
			},
		},
		"required": []string{"text"},
	}
}

// Execute analyzes the text and formats the statistics report
func (ctt *CountTextTool) Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	text := stringArg(arguments, "text", "")

	stats, err := textkit.Count(text)
	if err != nil {
		return nil, err
	}

	ctt.logger.WithContext("words", stats.Words).
		WithContext("chars", stats.CharsWithSpaces).
		Debug("Text analyzed")

	result := fmt.Sprintf(`📊 **TEXT STATISTICS**

📝 **Basic Counts:**
• Characters (with spaces): %s
• Characters (no spaces): %s
• Words: %s
• Sentences: %s
• Paragraphs: %s
• Lines: %s

📈 **Analysis:**
• Average words per sentence: %s
• Average characters per word: %s
• Estimated reading time: %d minute(s)

✅ **Analysis complete!**`,
		formatInt(stats.CharsWithSpaces),
		formatInt(stats.CharsNoSpaces),
		formatInt(stats.Words),
		formatInt(stats.Sentences),
		formatInt(stats.Paragraphs),
		formatInt(stats.Lines),
		formatFloat(stats.AvgWordsPerSentence()),
		formatFloat(stats.AvgCharsPerWord()),
		stats.ReadingTimeMinutes)

	return result, nil
}
