// Package mcptools exposes the analysis and matching engines as MCP tools
// over stdio.
package mcptools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resume-engine/internal/analyses"
	"resume-engine/internal/matching"
)

// Version is the MCP server version.
const Version = "0.3.0"

var ErrMissingService = errors.New("analysis and match services are required")

// Server is the MCP server for the résumé engine.
type Server struct {
	analyses *analyses.Service
	matches  *matching.Service
	server   *mcp.Server
}

// NewServer creates an MCP server backed by the given services.
func NewServer(a *analyses.Service, m *matching.Service) (*Server, error) {
	if a == nil || m == nil {
		return nil, ErrMissingService
	}
	s := &Server{
		analyses: a,
		matches:  m,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "resume-engine",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
