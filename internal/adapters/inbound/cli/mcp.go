package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	mcpadapter "github.com/zuucrates/cargo-configure/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the cargo-configure MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start cargo-configure MCP server (stdio)",
		Long:  "Start the MCP server using stdio transport. Assistants can list lints, read a lint's profile severities and render profile files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			s := mcpadapter.NewServer(e.cfg, e.logger, version)
			return server.ServeStdio(s)
		},
	}
	return cmd
}
