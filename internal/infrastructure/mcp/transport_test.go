package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type jsonRPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      int              `json:"id"`
	Result  *json.RawMessage `json:"result,omitempty"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func TestMCPHTTPTransport(t *testing.T) {
	tempDir := t.TempDir()

	prevVersion, prevCommit, prevDate := Version, BuildCommit, BuildDate
	Version, BuildCommit, BuildDate = "test", "commit123", "2026-01-01"
	t.Cleanup(func() {
		Version, BuildCommit, BuildDate = prevVersion, prevCommit, prevDate
	})

	addr := pickFreeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newTestServer(t, tempDir)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ServeHTTP(ctx, addr)
	}()

	waitForHTTP(t, addr, 5*time.Second)

	resp := sendJSONRPC(t, addr, jsonRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: map[string]any{
			"protocolVersion": "2024-11-05",
			"clientInfo": map[string]any{
				"name":    "e2elint-test",
				"version": "0.0.0",
			},
			"capabilities": map[string]any{},
		},
	})

	if resp.Error != nil {
		t.Fatalf("initialize error: %v", resp.Error.Message)
	}
	if resp.Result == nil {
		t.Fatalf("initialize missing result")
	}
	var result map[string]any
	if err := json.Unmarshal(*resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}

	serverInfo := result["serverInfo"].(map[string]any)
	if serverInfo["version"] != "test" {
		t.Fatalf("unexpected version: %v", serverInfo["version"])
	}
	capabilities := result["capabilities"].(map[string]any)
	if _, ok := capabilities["tools"]; !ok {
		t.Fatalf("expected tools capability")
	}

	resp = sendJSONRPC(t, addr, jsonRPCRequest{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/list",
	})
	if resp.Error != nil {
		t.Fatalf("tools/list error: %v", resp.Error.Message)
	}
	if resp.Result == nil || !strings.Contains(string(*resp.Result), "e2elint_review_content") {
		t.Fatalf("expected e2elint_review_content in tools/list")
	}
}

func TestMCPWebSocketTransport(t *testing.T) {
	tempDir := t.TempDir()

	prevVersion, prevCommit, prevDate := Version, BuildCommit, BuildDate
	Version, BuildCommit, BuildDate = "test", "commit123", "2026-01-01"
	t.Cleanup(func() {
		Version, BuildCommit, BuildDate = prevVersion, prevCommit, prevDate
	})

	addr := pickFreeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newTestServer(t, tempDir)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ServeWebSocket(ctx, addr)
	}()

	// Wait for WebSocket server to start
	time.Sleep(100 * time.Millisecond)

	// Connect using raw WebSocket (mcp-go client doesn't have WebSocket transport)
	wsURL := fmt.Sprintf("ws://%s/mcp", addr)
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer func() { _ = ws.Close() }()

	// Send initialize request
	initReq := jsonRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: map[string]any{
			"protocolVersion": "2024-11-05",
			"clientInfo": map[string]any{
				"name":    "e2elint-ws-test",
				"version": "0.0.0",
			},
			"capabilities": map[string]any{},
		},
	}
	if err := ws.WriteJSON(initReq); err != nil {
		t.Fatalf("write initialize: %v", err)
	}

	// Read initialize response
	var initResp jsonRPCResponse
	if err := ws.ReadJSON(&initResp); err != nil {
		t.Fatalf("read initialize: %v", err)
	}
	if initResp.Error != nil {
		t.Fatalf("initialize error: %v", initResp.Error.Message)
	}
	if initResp.Result == nil {
		t.Fatalf("initialize missing result")
	}

	var result map[string]any
	if err := json.Unmarshal(*initResp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	capabilities := result["capabilities"].(map[string]any)
	if _, ok := capabilities["tools"]; !ok {
		t.Fatalf("expected tools capability")
	}

	// Send tools/list request
	toolsReq := jsonRPCRequest{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/list",
	}
	if err := ws.WriteJSON(toolsReq); err != nil {
		t.Fatalf("write tools/list: %v", err)
	}

	// Read tools/list response
	var toolsResp jsonRPCResponse
	if err := ws.ReadJSON(&toolsResp); err != nil {
		t.Fatalf("read tools/list: %v", err)
	}
	if toolsResp.Error != nil {
		t.Fatalf("tools/list error: %v", toolsResp.Error.Message)
	}

	var toolsResult map[string]any
	if err := json.Unmarshal(*toolsResp.Result, &toolsResult); err != nil {
		t.Fatalf("unmarshal tools: %v", err)
	}

	tools, ok := toolsResult["tools"].([]any)
	if !ok {
		t.Fatalf("expected tools array")
	}

	found := false
	for _, tool := range tools {
		toolMap := tool.(map[string]any)
		if toolMap["name"] == "e2elint_review" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected e2elint_review tool")
	}
}

func pickFreeAddr(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()
	return addr
}

func waitForHTTP(t *testing.T, addr string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://%s/health", addr)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server did not become healthy at %s", url)
}

func sendJSONRPC(t *testing.T, addr string, req jsonRPCRequest) jsonRPCResponse {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	url := fmt.Sprintf("http://%s/mcp", addr)
	httpResp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("http post: %v", err)
	}
	defer httpResp.Body.Close() //nolint:errcheck // best-effort close on read body

	var resp jsonRPCResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}
