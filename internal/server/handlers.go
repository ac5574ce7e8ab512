package server

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"mcp-textutils-service/internal/models"
	"mcp-textutils-service/pkg/errors"
	"mcp-textutils-service/pkg/textkit"
	"mcp-textutils-service/pkg/tools"
)

// protocolVersion is the MCP protocol revision this server implements
const protocolVersion = "2024-11-05"

// handleInitialize handles the MCP initialize method
func (s *MCPServer) handleInitialize(message *models.MCPMessage) *models.MCPMessage {
	result := models.MCPInitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    s.capabilities,
		ServerInfo:      s.serverInfo,
	}

	return &models.MCPMessage{
		JSONRPC: "2.0",
		ID:      message.ID,
		Result:  result,
	}
}

// handleInitialized handles the notifications/initialized method
func (s *MCPServer) handleInitialized(message *models.MCPMessage) *models.MCPMessage {
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	s.logger.Info("MCP server initialized successfully")
	return nil // No response for notifications
}

// handleToolsList handles the tools/list method
func (s *MCPServer) handleToolsList(message *models.MCPMessage) *models.MCPMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	toolDefinitions := s.toolManager.ListTools()

	mcpTools := make([]models.MCPTool, 0, len(toolDefinitions))
	for _, toolDef := range toolDefinitions {
		mcpTools = append(mcpTools, models.MCPTool{
			Name:        toolDef.Name,
			Description: toolDef.Description,
			InputSchema: toolDef.InputSchema,
		})
	}

	result := models.MCPToolsListResult{
		Tools: mcpTools,
	}

	return &models.MCPMessage{
		JSONRPC: "2.0",
		ID:      message.ID,
		Result:  result,
	}
}

// handleToolsCall handles the tools/call method.
//
// Domain failures never escape as protocol errors here: an unknown tool, an
// empty text, a bad selector all come back as a successful response whose
// text content describes the problem. Clients render that text to the user
// directly. Only malformed requests and infrastructure failures produce
// JSON-RPC error objects.
func (s *MCPServer) handleToolsCall(message *models.MCPMessage) *models.MCPMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var params models.MCPToolsCallParams
	if message.Params != nil {
		paramsBytes, err := json.Marshal(message.Params)
		if err != nil {
			return s.createErrorResponse(message.ID, -32602, "Invalid parameters")
		}
		if err := json.Unmarshal(paramsBytes, &params); err != nil {
			return s.createErrorResponse(message.ID, -32602, "Invalid parameters format")
		}
	}

	if params.Name == "" {
		structuredErr := errors.NewValidationError(errors.ErrCodeInvalidParams,
			"Missing required parameter: name", nil)
		return s.createStructuredErrorResponse(message.ID, structuredErr)
	}

	result, err := s.toolManager.ExecuteTool(context.Background(), params.Name, params.Arguments)
	if err != nil {
		if text, ok := displayableError(params.Name, err); ok {
			return s.createToolTextResponse(message.ID, text)
		}
		return s.handleToolExecutionError(message.ID, params.Name, err)
	}

	var contentText string
	if strResult, ok := result.(string); ok {
		contentText = strResult
	} else {
		jsonBytes, err := json.Marshal(result)
		if err != nil {
			structuredErr := errors.NewSystemError("TOOL_RESULT_SERIALIZATION_FAILED",
				"Failed to serialize tool result", err).
				WithContext("tool_name", params.Name)
			return s.createStructuredErrorResponse(message.ID, structuredErr)
		}
		contentText = string(jsonBytes)
	}

	return s.createToolTextResponse(message.ID, contentText)
}

// displayableError maps tool-level failures to user-facing result text.
// Unknown tools and typed transformation failures are display results;
// everything else stays an error.
func displayableError(toolName string, err error) (string, bool) {
	if goerrors.Is(err, tools.ErrToolNotFound) {
		return fmt.Sprintf("❌ Unknown tool: %s", toolName), true
	}
	var te *textkit.Error
	if goerrors.As(err, &te) {
		return "❌ " + te.Message, true
	}
	return "", false
}

// createToolTextResponse wraps display text in the single-content-block
// result shape every tool response uses
func (s *MCPServer) createToolTextResponse(id interface{}, text string) *models.MCPMessage {
	return &models.MCPMessage{
		JSONRPC: "2.0",
		ID:      id,
		Result: models.MCPToolsCallResult{
			Content: []models.MCPToolContent{
				{
					Type: "text",
					Text: text,
				},
			},
		},
	}
}

// handleToolExecutionError creates the error response for infrastructure
// failures during tool execution
func (s *MCPServer) handleToolExecutionError(id interface{}, toolName string, err error) *models.MCPMessage {
	if structuredErr, ok := err.(*errors.StructuredError); ok {
		return s.createStructuredErrorResponse(id, structuredErr)
	}

	if strings.Contains(err.Error(), "validation failed") ||
		strings.Contains(err.Error(), "invalid argument") {
		structuredErr := errors.NewValidationError(errors.ErrCodeInvalidParams,
			"Tool argument validation failed", err).WithContext("tool_name", toolName)
		return s.createStructuredErrorResponse(id, structuredErr)
	}

	if strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "deadline exceeded") {
		structuredErr := errors.NewSystemError("TOOL_EXECUTION_TIMEOUT",
			"Tool execution timeout", err).WithContext("tool_name", toolName)
		return s.createStructuredErrorResponse(id, structuredErr)
	}

	structuredErr := errors.NewSystemError("TOOL_EXECUTION_FAILED",
		"Tool execution failed", err).WithContext("tool_name", toolName)
	return s.createStructuredErrorResponse(id, structuredErr)
}

// handlePerformanceMetrics handles requests for server performance metrics
func (s *MCPServer) handlePerformanceMetrics(message *models.MCPMessage) *models.MCPMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	serverMetrics := map[string]interface{}{
		"server_info":     s.serverInfo,
		"initialized":     s.initialized,
		"tool_metrics":    s.toolManager.GetPerformanceMetrics(),
		"logging_metrics": s.loggingManager.GetStats(),
		"goroutines":      runtime.NumGoroutine(),
		"memory_stats":    getMemoryStats(),
		"timestamp":       time.Now().Format(time.RFC3339),
	}

	return &models.MCPMessage{
		JSONRPC: "2.0",
		ID:      message.ID,
		Result:  serverMetrics,
	}
}

// createErrorResponse creates an MCP error response
func (s *MCPServer) createErrorResponse(id interface{}, code int, message string) *models.MCPMessage {
	return &models.MCPMessage{
		JSONRPC: "2.0",
		ID:      id,
		Error: &models.MCPError{
			Code:    code,
			Message: message,
		},
	}
}

// createStructuredErrorResponse creates an MCP error response from a
// structured error
func (s *MCPServer) createStructuredErrorResponse(id interface{}, structuredErr *errors.StructuredError) *models.MCPMessage {
	return &models.MCPMessage{
		JSONRPC: "2.0",
		ID:      id,
		Error:   structuredErr.ToMCPError(),
	}
}

// getMemoryStats returns current memory statistics
func getMemoryStats() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]interface{}{
		"alloc_bytes":       m.Alloc,
		"total_alloc_bytes": m.TotalAlloc,
		"sys_bytes":         m.Sys,
		"num_gc":            m.NumGC,
	}
}
