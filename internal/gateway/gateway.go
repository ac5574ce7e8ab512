// Package gateway exposes the tool catalog over HTTP for clients that
// cannot speak stdio MCP.
//
// The gateway shares the tool manager with the MCP server, so both fronts
// dispatch into the same registry with the same semantics: tool-level
// failures become readable text results, and only malformed requests get
// error status codes. Results are markdown-styled text; a client can ask
// for ?format=html to have the gateway render them.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"

	"mcp-textutils-service/internal/models"
	"mcp-textutils-service/pkg/config"
	"mcp-textutils-service/pkg/logging"
	"mcp-textutils-service/pkg/textkit"
	"mcp-textutils-service/pkg/tools"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// callRequest is the body of POST /call_tool
type callRequest struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// Gateway is the HTTP front over the tool manager
type Gateway struct {
	config      *config.Config
	toolManager *tools.ToolManager
	logger      *logging.StructuredLogger
	markdown    goldmark.Markdown
	httpServer  *http.Server
}

// New creates a gateway serving the given tool manager
func New(cfg *config.Config, toolManager *tools.ToolManager, logger *logging.StructuredLogger) *Gateway {
	g := &Gateway{
		config:      cfg,
		toolManager: toolManager,
		logger:      logger,
		markdown:    goldmark.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/call_tool", g.handleCallTool)
	mux.HandleFunc("/tools", g.handleListTools)
	mux.HandleFunc("/healthz", g.handleHealthz)

	g.httpServer = &http.Server{
		Addr:              cfg.GatewayAddr(),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return g
}

// SetAddr overrides the configured listen address. Must be called before Run.
func (g *Gateway) SetAddr(addr string) {
	g.httpServer.Addr = addr
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (g *Gateway) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		g.logger.WithContext("addr", g.httpServer.Addr).Info("HTTP gateway listening")
		if err := g.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		g.logger.Info("HTTP gateway shutting down")
		return g.httpServer.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// handleCallTool executes a tool and returns its text result. Tool-level
// failures are 200 responses whose text carries the error message, matching
// the MCP front's behavior.
func (g *Gateway) handleCallTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		g.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req callRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		g.writeError(w, http.StatusBadRequest, "missing required field: name")
		return
	}

	result, err := g.toolManager.ExecuteTool(r.Context(), req.Name, req.Arguments)

	var text string
	switch {
	case err == nil:
		if s, ok := result.(string); ok {
			text = s
		} else {
			jsonBytes, jsonErr := json.Marshal(result)
			if jsonErr != nil {
				g.writeError(w, http.StatusInternalServerError, "failed to serialize tool result")
				return
			}
			text = string(jsonBytes)
		}
	case isDisplayableError(err):
		text = displayText(req.Name, err)
	default:
		g.logger.WithContext("tool", req.Name).WithError(err).Error("Tool execution failed")
		g.writeError(w, http.StatusInternalServerError, "tool execution failed")
		return
	}

	if r.URL.Query().Get("format") == "html" {
		g.writeHTML(w, text)
		return
	}

	g.writeJSON(w, http.StatusOK, models.MCPToolsCallResult{
		Content: []models.MCPToolContent{
			{Type: "text", Text: text},
		},
	})
}

// handleListTools returns the tool catalog in listing order
func (g *Gateway) handleListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		g.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	definitions := g.toolManager.ListTools()
	mcpTools := make([]models.MCPTool, 0, len(definitions))
	for _, def := range definitions {
		mcpTools = append(mcpTools, models.MCPTool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}

	g.writeJSON(w, http.StatusOK, models.MCPToolsListResult{Tools: mcpTools})
}

// handleHealthz reports liveness
func (g *Gateway) handleHealthz(w http.ResponseWriter, r *http.Request) {
	g.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// isDisplayableError reports whether err should become result text rather
// than an HTTP error
func isDisplayableError(err error) bool {
	if _, ok := textkit.KindOf(err); ok {
		return true
	}
	return errors.Is(err, tools.ErrToolNotFound)
}

// displayText formats a displayable error the same way the MCP front does
func displayText(toolName string, err error) string {
	if errors.Is(err, tools.ErrToolNotFound) {
		return fmt.Sprintf("❌ Unknown tool: %s", toolName)
	}
	return "❌ " + err.Error()
}

// writeHTML renders the markdown-styled result text to HTML
func (g *Gateway) writeHTML(w http.ResponseWriter, text string) {
	var buf strings.Builder
	if err := g.markdown.Convert([]byte(text), &buf); err != nil {
		g.writeError(w, http.StatusInternalServerError, "failed to render result")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, buf.String())
}

// writeJSON writes a JSON response with the given status
func (g *Gateway) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		g.logger.WithError(err).Error("Failed to encode response")
	}
}

// writeError writes a JSON error body with the given status
func (g *Gateway) writeError(w http.ResponseWriter, status int, message string) {
	g.writeJSON(w, status, map[string]string{"error": message})
}
