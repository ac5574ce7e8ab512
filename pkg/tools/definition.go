package tools

import (
	"context"
)

// Tool represents an executable text utility exposed via MCP
type Tool interface {
	// Name returns the unique identifier for the tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// InputSchema returns JSON schema for tool parameters
	InputSchema() map[string]interface{}

	// Execute runs the tool. The result is a single display string; domain
	// failures come back as typed textkit errors and are formatted into
	// display text at the dispatch boundary.
	Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error)
}

// ToolDefinition represents metadata about a tool
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

// NewToolDefinition creates a ToolDefinition from a Tool
func NewToolDefinition(tool Tool) ToolDefinition {
	return ToolDefinition{
		Name:        tool.Name(),
		Description: tool.Description(),
		InputSchema: tool.InputSchema(),
	}
}
