// Package mcp exposes the checker as Model Context Protocol tools over
// stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/namewastaken/namewastaken/internal/core/engine"
)

const serverName = "namewastaken"

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server backed by the check engine.
func New(eng *engine.Orchestrator, cacheEnabled bool, version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	registerTools(mcpServer, eng, cacheEnabled)

	return &Server{mcpServer: mcpServer}
}

// Serve runs the MCP server over stdio until the context is canceled.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
