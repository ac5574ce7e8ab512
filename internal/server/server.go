// Package server implements the MCP server for the text utilities service.
//
// The server speaks JSON-RPC 2.0 over stdio: requests arrive on stdin,
// responses leave on stdout, and all logging goes to stderr so the protocol
// stream stays clean. Tool-level failures are reported as successful calls
// whose single text content block carries a readable error message; only
// protocol faults (malformed params, timeouts, unknown methods) surface as
// JSON-RPC error objects.
package server

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"mcp-textutils-service/internal/models"
	"mcp-textutils-service/pkg/config"
	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/monitor"
	"mcp-textutils-service/pkg/tools"
)

// MCPServer represents the main MCP server
type MCPServer struct {
	serverInfo   models.MCPServerInfo
	capabilities models.MCPCapabilities
	initialized  bool

	// Service configuration, immutable after Load
	config *config.Config

	// Tool subsystem
	toolManager *tools.ToolManager

	// Credential file monitoring
	monitor *monitor.EnvFileMonitor

	// Logging
	loggingManager *logging.LoggingManager
	logger         *logging.StructuredLogger

	shutdownChan chan struct{}

	mu sync.RWMutex
}

// NewMCPServer creates a new MCP server instance with the full tool catalog
// registered
func NewMCPServer(cfg *config.Config) (*MCPServer, error) {
	return newMCPServerWithOptions(cfg, true)
}

// newMCPServerWithOptions creates a new MCP server with optional components.
// enableMonitor controls whether credential file monitoring is enabled
// (disabled for tests and benchmarks).
func newMCPServerWithOptions(cfg *config.Config, enableMonitor bool) (*MCPServer, error) {
	loggingManager := logging.NewLoggingManager()
	loggingManager.SetGlobalContext("service", config.ServerName)
	loggingManager.SetGlobalContext("version", config.ServerVersion)
	loggingManager.SetLogLevel(cfg.LogLevel)
	logger := loggingManager.GetLogger("server")

	toolManager := tools.NewToolManager(loggingManager.GetLogger("tools"))
	if cfg.ToolTimeout > 0 {
		toolManager.SetExecutionTimeout(cfg.ToolTimeout)
	}
	if err := tools.RegisterAll(toolManager, cfg, loggingManager.GetLogger("tools")); err != nil {
		return nil, err
	}

	var envMonitor *monitor.EnvFileMonitor
	if enableMonitor {
		var err error
		envMonitor, err = monitor.NewEnvFileMonitor(loggingManager.GetLogger("monitor"))
		if err != nil {
			// Monitoring is advisory; the server runs without it
			loggingManager.LogError("server", err, "Failed to create credential file monitor", map[string]interface{}{
				"component": "env_monitor",
			})
			envMonitor = nil
		}
	}

	server := &MCPServer{
		serverInfo: models.MCPServerInfo{
			Name:    config.ServerName,
			Version: config.ServerVersion,
		},
		capabilities: models.MCPCapabilities{
			Tools: &models.MCPToolCapabilities{
				ListChanged: false,
			},
		},
		initialized: false,

		config:      cfg,
		toolManager: toolManager,
		monitor:     envMonitor,

		loggingManager: loggingManager,
		logger:         logger,

		shutdownChan: make(chan struct{}),
	}

	return server, nil
}

// ToolManager exposes the tool subsystem, used by the HTTP gateway
func (s *MCPServer) ToolManager() *tools.ToolManager {
	return s.toolManager
}

// Start begins the MCP server operation: starts credential monitoring and
// then blocks in the stdio message loop until ctx is cancelled or stdin
// closes.
func (s *MCPServer) Start(ctx context.Context) error {
	startTime := time.Now()

	s.loggingManager.LogStartupSequence("server_start", map[string]interface{}{
		"phase": "initialization",
	}, 0, true)

	if s.monitor != nil && s.config.EnvFile != "" {
		monitorStart := time.Now()
		err := s.monitor.WatchFile(s.config.EnvFile, func(event monitor.ChangeEvent) {
			s.logger.WithContext("path", event.Path).
				WithContext("event_type", event.Type).
				Warn("Credentials file changed on disk; running server keeps its loaded values")
		})
		if err != nil {
			s.loggingManager.LogStartupSequence("monitor_start", map[string]interface{}{
				"error": err.Error(),
			}, time.Since(monitorStart), false)
			s.logger.WithError(err).Warn("Failed to start credential file monitoring")
		} else {
			s.loggingManager.LogStartupSequence("monitor_start", map[string]interface{}{
				"env_file": s.config.EnvFile,
			}, time.Since(monitorStart), true)
		}
	}

	s.loggingManager.LogStartupSequence("server_ready", map[string]interface{}{
		"tools":                 len(s.toolManager.ListTools()),
		"total_startup_time_ms": time.Since(startTime).Milliseconds(),
	}, time.Since(startTime), true)

	s.logger.Info("Text utilities MCP server started successfully")

	return s.processMessages(ctx, os.Stdin, os.Stdout)
}

// Shutdown gracefully shuts down the MCP server
func (s *MCPServer) Shutdown(ctx context.Context) error {
	shutdownStart := time.Now()

	s.loggingManager.LogShutdownSequence("shutdown_start", map[string]interface{}{}, 0, true)

	close(s.shutdownChan)

	if s.monitor != nil {
		monitorStop := time.Now()
		if err := s.monitor.StopWatching(); err != nil {
			s.loggingManager.LogShutdownSequence("monitor_stop", map[string]interface{}{
				"error": err.Error(),
			}, time.Since(monitorStop), false)
			s.logger.WithError(err).Error("Error stopping credential file monitor")
		} else {
			s.loggingManager.LogShutdownSequence("monitor_stop", map[string]interface{}{},
				time.Since(monitorStop), true)
		}
	}

	s.loggingManager.LogShutdownSequence("shutdown_complete", map[string]interface{}{
		"total_shutdown_time_ms": time.Since(shutdownStart).Milliseconds(),
	}, time.Since(shutdownStart), true)

	s.logger.Info("Text utilities MCP server shutdown completed")

	return nil
}

// processMessages handles the JSON-RPC message processing loop
func (s *MCPServer) processMessages(ctx context.Context, reader io.Reader, writer io.Writer) error {
	decoder := json.NewDecoder(reader)
	encoder := json.NewEncoder(writer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			var message models.MCPMessage
			if err := decoder.Decode(&message); err != nil {
				if err == io.EOF {
					return nil
				}
				s.logger.WithError(err).Error("Error decoding message")
				continue
			}

			response := s.handleMessage(&message)
			if response != nil {
				if err := encoder.Encode(response); err != nil {
					s.logger.WithError(err).Error("Error encoding response")
				}
			}
		}
	}
}

// HandleMessage processes individual MCP messages (exported for testing)
func (s *MCPServer) HandleMessage(message *models.MCPMessage) *models.MCPMessage {
	return s.handleMessage(message)
}

// handleMessage processes individual MCP messages
func (s *MCPServer) handleMessage(message *models.MCPMessage) *models.MCPMessage {
	startTime := time.Now()
	var response *models.MCPMessage
	var success bool = true
	var errorMsg string

	defer func() {
		duration := time.Since(startTime)
		s.loggingManager.LogMCPRequest(message.Method, message.ID, duration, success, errorMsg)
	}()

	switch message.Method {
	case "initialize":
		response = s.handleInitialize(message)
	case "notifications/initialized":
		response = s.handleInitialized(message)
	case "tools/list":
		response = s.handleToolsList(message)
	case "tools/call":
		response = s.handleToolsCall(message)
	case "server/performance":
		response = s.handlePerformanceMetrics(message)
	default:
		success = false
		errorMsg = "Method not found"
		response = s.createErrorResponse(message.ID, -32601, "Method not found")
	}

	if response != nil && response.Error != nil {
		success = false
		errorMsg = response.Error.Message
	}

	return response
}
