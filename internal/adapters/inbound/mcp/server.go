package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/emitter"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// NewServer creates an MCP server exposing the lint catalog. cfg supplies the
// tool prefix and wrap width used when rendering profile files.
func NewServer(cfg domain.ProjectConfig, logger *zerolog.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"cargo-configure",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	writer := emitter.New(cfg.ToolPrefix, cfg.WrapWidth)
	registerTools(s, writer, logger)
	registerResources(s, writer, logger)

	return s
}
