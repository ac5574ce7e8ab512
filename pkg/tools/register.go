package tools

import (
	"mcp-textutils-service/pkg/config"
	"mcp-textutils-service/pkg/logging"
)

// RegisterAll registers the full tool catalog on the manager in its fixed
// listing order: validate first, then the text utilities. The order is part
// of the tool listing contract, so additions belong at a deliberate position
// here rather than wherever is convenient.
func RegisterAll(tm *ToolManager, cfg *config.Config, logger *logging.StructuredLogger) error {
	catalog := []Tool{
		NewValidateTool(cfg, logger),
		NewCountTextTool(logger),
		NewConvertCaseTool(logger),
		NewCleanTextTool(logger),
		NewBase64ConverterTool(logger),
		NewGeneratePasswordTool(logger),
		NewExtractDataTool(logger),
	}

	for _, tool := range catalog {
		if err := tm.RegisterTool(tool); err != nil {
			return err
		}
	}
	return nil
}
