package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/cosmic-code/internal/highlight"
	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the highlighter and the particle
// simulation as tools.
type Server struct {
	hl   *highlight.Highlighter
	wrap particles.WrapPolicy
	mcp  *server.MCPServer
}

// NewServer creates a new MCP server. Simulations it runs use wrap.
func NewServer(hl *highlight.Highlighter, wrap particles.WrapPolicy) *Server {
	s := &Server{
		hl:   hl,
		wrap: wrap,
	}

	s.mcp = server.NewMCPServer(
		"cosmic",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(highlightCodeTool, s.handleHighlightCode)
	s.mcp.AddTool(simulateParticlesTool, s.handleSimulateParticles)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
