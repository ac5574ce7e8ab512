package tools

import (
	"context"
	"crypto/subtle"

	"mcp-textutils-service/pkg/config"
	"mcp-textutils-service/pkg/logging"
)

// ValidateTool checks a bearer token against the configured credential and
// returns the configured phone number on success. A failed comparison is
// still a successful tool call: the result text is "Invalid token", never a
// protocol error, so callers cannot distinguish transport faults from bad
// credentials.
type ValidateTool struct {
	config *config.Config
	logger *logging.StructuredLogger
}

// NewValidateTool creates a new ValidateTool instance
func NewValidateTool(cfg *config.Config, logger *logging.StructuredLogger) *ValidateTool {
	return &ValidateTool{
		config: cfg,
		logger: logger,
	}
}

// Name returns the unique identifier for the tool
func (vt *ValidateTool) Name() string {
	return "validate"
}

// Description returns a human-readable description
func (vt *ValidateTool) Description() string {
	return "Validate bearer token and return phone number for authentication"
}

// InputSchema returns JSON schema for tool parameters
func (vt *ValidateTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"token": map[string]interface{}{
				"type":        "string",
				"description": "Bearer token to validate",
			},
		},
		"required": []string{"token"},
	}
}

// Execute compares the presented token against the configured one in
// constant time
func (vt *ValidateTool) Execute(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	token := stringArg(arguments, "token", "")

	if subtle.ConstantTimeCompare([]byte(token), []byte(vt.config.AuthToken)) == 1 {
		vt.logger.LogSecurityEvent("token_validated", map[string]interface{}{
			"outcome": "success",
		})
		return vt.config.PhoneNumber, nil
	}

	vt.logger.LogSecurityEvent("token_rejected", map[string]interface{}{
		"outcome":      "failure",
		"token_length": len(token),
	})
	return "Invalid token", nil
}
