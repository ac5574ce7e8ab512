package tools

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mcp-textutils-service/pkg/logging"
)

// ErrToolNotFound is returned when a tool name does not resolve to a
// registered tool. Callers report this to the client as an "unknown tool"
// text result rather than a protocol fault.
var ErrToolNotFound = errors.New("tool not found")

// ToolManager manages tool registration, discovery, and execution.
// The catalog is fixed at startup: tools are registered once, in order, and
// the registry is never mutated afterwards.
type ToolManager struct {
	registry map[string]Tool
	order    []string // registration order, preserved by ListTools
	executor *ToolExecutor
	logger   *logging.StructuredLogger
	mu       sync.RWMutex

	// Performance metrics
	stats ToolStats
}

// ToolStats tracks performance metrics for tool invocations
type ToolStats struct {
	TotalInvocations     int64
	FailedInvocations    int64
	InvocationsByName    map[string]int64
	TotalExecutionTimeMs int64
	ExecutionTimeByName  map[string]int64
	TimeoutCount         int64
	mu                   sync.RWMutex
}

// NewToolManager creates a new ToolManager instance
func NewToolManager(logger *logging.StructuredLogger) *ToolManager {
	tm := &ToolManager{
		registry: make(map[string]Tool),
		executor: NewToolExecutor(logger),
		logger:   logger,
		stats: ToolStats{
			InvocationsByName:   make(map[string]int64),
			ExecutionTimeByName: make(map[string]int64),
		},
	}
	tm.executor.SetTimeoutCallback(tm.RecordTimeout)
	return tm
}

// SetExecutionTimeout overrides the per-invocation execution timeout
func (tm *ToolManager) SetExecutionTimeout(d time.Duration) {
	tm.executor.SetMaxExecutionTime(d)
}

// RegisterTool registers a new tool in the manager. Tool names are unique;
// registering a duplicate is an error.
func (tm *ToolManager) RegisterTool(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("cannot register nil tool")
	}

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if _, exists := tm.registry[name]; exists {
		return fmt.Errorf("tool %s already registered", name)
	}

	if tool.Description() == "" {
		tm.logger.WithContext("tool", name).
			Warn("Tool registered without description")
	}

	if tool.InputSchema() == nil {
		tm.logger.WithContext("tool", name).
			Warn("Tool registered without input schema")
	}

	tm.registry[name] = tool
	tm.order = append(tm.order, name)
	tm.logger.WithContext("tool", name).
		Info("Tool registered")

	return nil
}

// GetTool retrieves a tool by name
func (tm *ToolManager) GetTool(name string) (Tool, error) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	tool, exists := tm.registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	return tool, nil
}

// ListTools returns all registered tool definitions in registration order
func (tm *ToolManager) ListTools() []ToolDefinition {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	definitions := make([]ToolDefinition, 0, len(tm.order))
	for _, name := range tm.order {
		definitions = append(definitions, NewToolDefinition(tm.registry[name]))
	}

	return definitions
}

// ExecuteTool executes a tool by name with the provided arguments
func (tm *ToolManager) ExecuteTool(ctx context.Context, name string, arguments map[string]interface{}) (interface{}, error) {
	startTime := time.Now()

	tool, err := tm.GetTool(name)
	if err != nil {
		tm.recordFailure(name)
		return nil, err
	}

	result, err := tm.executor.Execute(ctx, tool, arguments)

	executionTime := time.Since(startTime).Milliseconds()
	if err != nil {
		tm.recordFailure(name)
	} else {
		tm.recordSuccess(name, executionTime)
	}

	return result, err
}

// GetPerformanceMetrics returns current performance metrics
func (tm *ToolManager) GetPerformanceMetrics() map[string]interface{} {
	tm.stats.mu.RLock()
	defer tm.stats.mu.RUnlock()

	invocationsByName := make(map[string]int64)
	for name, count := range tm.stats.InvocationsByName {
		invocationsByName[name] = count
	}

	executionTimeByName := make(map[string]int64)
	for name, ms := range tm.stats.ExecutionTimeByName {
		executionTimeByName[name] = ms
	}

	return map[string]interface{}{
		"total_invocations":       tm.stats.TotalInvocations,
		"failed_invocations":      tm.stats.FailedInvocations,
		"invocations_by_name":     invocationsByName,
		"total_execution_time_ms": tm.stats.TotalExecutionTimeMs,
		"execution_time_by_name":  executionTimeByName,
		"timeout_count":           tm.stats.TimeoutCount,
	}
}

// recordSuccess records a successful tool invocation
func (tm *ToolManager) recordSuccess(toolName string, executionTimeMs int64) {
	tm.stats.mu.Lock()
	defer tm.stats.mu.Unlock()

	tm.stats.TotalInvocations++
	tm.stats.InvocationsByName[toolName]++
	tm.stats.TotalExecutionTimeMs += executionTimeMs
	tm.stats.ExecutionTimeByName[toolName] += executionTimeMs
}

// recordFailure records a failed tool invocation
func (tm *ToolManager) recordFailure(toolName string) {
	tm.stats.mu.Lock()
	defer tm.stats.mu.Unlock()

	tm.stats.TotalInvocations++
	tm.stats.FailedInvocations++
	tm.stats.InvocationsByName[toolName]++
}

// RecordTimeout records a timeout event
func (tm *ToolManager) RecordTimeout() {
	tm.stats.mu.Lock()
	defer tm.stats.mu.Unlock()

	tm.stats.TimeoutCount++
}
