package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mcp-textutils-service/internal/models"
	"mcp-textutils-service/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AuthToken:   "test-secret-token",
		PhoneNumber: "15551234567",
		ToolTimeout: 5 * time.Second,
		LogLevel:    "ERROR",
	}
}

func newTestServer(t *testing.T) *MCPServer {
	t.Helper()
	s, err := newMCPServerWithOptions(testConfig(), false)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

// callResult extracts the single text content block from a tools/call response
func callResult(t *testing.T, response *models.MCPMessage) string {
	t.Helper()
	if response == nil {
		t.Fatal("expected a response")
	}
	if response.Error != nil {
		t.Fatalf("expected success, got error: %+v", response.Error)
	}
	result, ok := response.Result.(models.MCPToolsCallResult)
	if !ok {
		t.Fatalf("unexpected result type %T", response.Result)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Fatalf("expected text content, got %q", result.Content[0].Type)
	}
	return result.Content[0].Text
}

func TestHandleInitialize(t *testing.T) {
	s := newTestServer(t)

	response := s.HandleMessage(&models.MCPMessage{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	})

	if response == nil || response.Error != nil {
		t.Fatalf("initialize failed: %+v", response)
	}

	result, ok := response.Result.(models.MCPInitializeResult)
	if !ok {
		t.Fatalf("unexpected result type %T", response.Result)
	}
	if result.ProtocolVersion != "2024-11-05" {
		t.Errorf("unexpected protocol version %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "text-utilities-server" {
		t.Errorf("unexpected server name %q", result.ServerInfo.Name)
	}
	if result.Capabilities.Tools == nil {
		t.Error("expected tools capability to be advertised")
	}
}

func TestHandleInitialized(t *testing.T) {
	s := newTestServer(t)

	response := s.HandleMessage(&models.MCPMessage{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	})
	if response != nil {
		t.Errorf("notifications must not produce a response, got %+v", response)
	}
	if !s.initialized {
		t.Error("server should be marked initialized")
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)

	response := s.HandleMessage(&models.MCPMessage{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/list",
	})

	result, ok := response.Result.(models.MCPToolsListResult)
	if !ok {
		t.Fatalf("unexpected result type %T", response.Result)
	}

	wantOrder := []string{
		"validate", "count_text", "convert_case", "clean_text",
		"base64_converter", "generate_password", "extract_data",
	}
	if len(result.Tools) != len(wantOrder) {
		t.Fatalf("expected %d tools, got %d", len(wantOrder), len(result.Tools))
	}
	for i, tool := range result.Tools {
		if tool.Name != wantOrder[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantOrder[i], tool.Name)
		}
		if tool.InputSchema == nil {
			t.Errorf("tool %s has no input schema", tool.Name)
		}
	}
}

func TestHandleToolsCall(t *testing.T) {
	s := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      3,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name": "count_text",
				"arguments": map[string]interface{}{
					"text": "Hello world. This is great!",
				},
			},
		})

		text := callResult(t, response)
		if !strings.Contains(text, "📊 **TEXT STATISTICS**") {
			t.Errorf("unexpected result text:\n%s", text)
		}
	})

	t.Run("ValidateReturnsPhoneNumber", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      4,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name": "validate",
				"arguments": map[string]interface{}{
					"token": "test-secret-token",
				},
			},
		})

		if text := callResult(t, response); text != "15551234567" {
			t.Errorf("expected phone number, got %q", text)
		}
	})

	t.Run("DomainErrorBecomesTextResult", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      5,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name": "count_text",
				"arguments": map[string]interface{}{
					"text": "   ",
				},
			},
		})

		if text := callResult(t, response); text != "❌ Text is empty." {
			t.Errorf("expected empty-text message, got %q", text)
		}
	})

	t.Run("MissingArgumentsBehaveAsEmpty", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      6,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name": "clean_text",
			},
		})

		if text := callResult(t, response); text != "❌ Text is empty." {
			t.Errorf("expected empty-text message, got %q", text)
		}
	})

	t.Run("UnknownToolBecomesTextResult", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      7,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name": "does_not_exist",
			},
		})

		if text := callResult(t, response); text != "❌ Unknown tool: does_not_exist" {
			t.Errorf("unexpected unknown-tool message %q", text)
		}
	})

	t.Run("OutOfRangePasswordLengthIsTextResult", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      8,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name": "generate_password",
				"arguments": map[string]interface{}{
					"length": float64(5),
				},
			},
		})

		want := "❌ Password length must be between 8 and 50 characters"
		if text := callResult(t, response); text != want {
			t.Errorf("expected %q, got %q", want, text)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		response := s.HandleMessage(&models.MCPMessage{
			JSONRPC: "2.0",
			ID:      9,
			Method:  "tools/call",
			Params:  map[string]interface{}{},
		})

		if response == nil || response.Error == nil {
			t.Fatal("expected a protocol error for missing name")
		}
		if response.Error.Code != -32602 {
			t.Errorf("expected -32602, got %d", response.Error.Code)
		}
	})
}

func TestHandleUnknownMethod(t *testing.T) {
	s := newTestServer(t)

	response := s.HandleMessage(&models.MCPMessage{
		JSONRPC: "2.0",
		ID:      10,
		Method:  "bogus/method",
	})

	if response == nil || response.Error == nil {
		t.Fatal("expected an error response")
	}
	if response.Error.Code != -32601 {
		t.Errorf("expected -32601, got %d", response.Error.Code)
	}
}

func TestHandlePerformanceMetrics(t *testing.T) {
	s := newTestServer(t)

	// Generate some traffic first
	s.HandleMessage(&models.MCPMessage{
		JSONRPC: "2.0",
		ID:      11,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"name":      "generate_password",
			"arguments": map[string]interface{}{},
		},
	})

	response := s.HandleMessage(&models.MCPMessage{
		JSONRPC: "2.0",
		ID:      12,
		Method:  "server/performance",
	})

	metrics, ok := response.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", response.Result)
	}

	toolMetrics, ok := metrics["tool_metrics"].(map[string]interface{})
	if !ok {
		t.Fatal("expected tool_metrics in performance data")
	}
	if toolMetrics["total_invocations"].(int64) < 1 {
		t.Error("expected at least one recorded invocation")
	}
}

func TestProcessMessages(t *testing.T) {
	s := newTestServer(t)

	// A short session: handshake, list, one call, then EOF
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"test-client","version":"1.0.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"count_text","arguments":{"text":"hello world"}}}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.processMessages(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("processMessages returned error: %v", err)
	}

	decoder := json.NewDecoder(&out)
	var responses []map[string]interface{}
	for decoder.More() {
		var response map[string]interface{}
		if err := decoder.Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		responses = append(responses, response)
	}

	// The notification produces no response
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0]["id"] != float64(1) {
		t.Errorf("expected first response id 1, got %v", responses[0]["id"])
	}
	result, ok := responses[0]["result"].(map[string]interface{})
	if !ok {
		t.Fatal("expected initialize result object")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("expected protocol version 2024-11-05, got %v", result["protocolVersion"])
	}
	if responses[1]["id"] != float64(2) {
		t.Errorf("expected second response id 2, got %v", responses[1]["id"])
	}
}

func TestProcessMessagesContextCancelled(t *testing.T) {
	s := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := s.processMessages(ctx, strings.NewReader(""), &out)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
