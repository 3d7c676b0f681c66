// Package mcp exposes the memory bank to MCP clients over stdio. The
// tools read the same directories as the HTTP API, so an agent and the
// dashboard always see identical state.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
)

// NewServer assembles the MCP server with all memory-bank tools
// registered.
func NewServer(roots dashboard.Roots, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"memory-bank-dashboard",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	t := NewTools(roots)
	s.AddTool(t.ListFilesDefinition(), t.HandleListFiles)
	s.AddTool(t.ReadFileDefinition(), t.HandleReadFile)
	s.AddTool(t.DashboardDefinition(), t.HandleDashboard)

	return s
}
