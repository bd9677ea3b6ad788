// Package mcp lets other programs embed the e2elint MCP server.
package mcp

import (
	"log/slog"

	infra "github.com/felixgeelhaar/e2elint/internal/infrastructure/mcp"
)

// Server exposes the MCP server implementation from the infrastructure layer.
type Server = infra.Server

// NewServer constructs an MCP server that reviews files under root.
// A nil logger uses slog.Default.
func NewServer(root string, logger *slog.Logger) (*Server, error) {
	return infra.NewServer(root, logger)
}
