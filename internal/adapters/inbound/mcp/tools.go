package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/zuucrates/cargo-configure/internal/domain"
	"github.com/zuucrates/cargo-configure/internal/domain/catalog"
)

// registerTools registers the catalog tools on the given server.
func registerTools(s *server.MCPServer, writer domain.ProfileWriter, logger *zerolog.Logger) {
	// 1. cargo_configure_list_lints
	s.AddTool(
		mcplib.NewTool("cargo_configure_list_lints",
			mcplib.WithDescription("Lists the lints of a profile with their group and severities as JSON"),
			mcplib.WithString("profile",
				mcplib.Description("Profile name: novice, expert or master (default novice)"),
			),
			mcplib.WithString("group",
				mcplib.Description("Only return lints of this clippy group, e.g. restriction"),
			),
		),
		handleListLints(logger),
	)

	// 2. cargo_configure_get_lint
	s.AddTool(
		mcplib.NewTool("cargo_configure_get_lint",
			mcplib.WithDescription("Returns one lint with its configuration in every profile"),
			mcplib.WithString("id",
				mcplib.Required(),
				mcplib.Description("Lint id, e.g. absolute_paths or AbsolutePaths"),
			),
		),
		handleGetLint(logger),
	)

	// 3. cargo_configure_render_profile
	s.AddTool(
		mcplib.NewTool("cargo_configure_render_profile",
			mcplib.WithDescription("Renders the TOML profile file exactly as generate would write it"),
			mcplib.WithString("profile",
				mcplib.Required(),
				mcplib.Description("Profile name: novice, expert or master"),
			),
		),
		handleRenderProfile(writer, logger),
	)
}

func handleListLints(logger *zerolog.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		profileName, _ := args["profile"].(string)
		if profileName == "" {
			profileName = domain.ProfileNovice.String()
		}
		profile, err := domain.ParseProfile(profileName)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		lints := catalog.For(profile)
		if groupName, _ := args["group"].(string); groupName != "" {
			group, err := domain.ParseLintGroup(groupName)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			lints = catalog.Filter(lints, group)
		}

		logger.Debug().Str("tool", "list_lints").Str("profile", profile.String()).Int("lints", len(lints)).Msg("mcp call")
		return jsonResult(lints)
	}
}

func handleGetLint(logger *zerolog.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		def, err := catalog.Lookup(id)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		out := make(map[string]domain.Lint, 3)
		for _, p := range domain.AllProfiles() {
			out[p.String()] = def.For(p)
		}
		logger.Debug().Str("tool", "get_lint").Str("id", def.ID).Msg("mcp call")
		return jsonResult(out)
	}
}

func handleRenderProfile(writer domain.ProfileWriter, logger *zerolog.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("profile")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		text, err := renderProfile(writer, name)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		logger.Debug().Str("tool", "render_profile").Str("profile", name).Int("bytes", len(text)).Msg("mcp call")
		return textResult(text), nil
	}
}

func renderProfile(writer domain.ProfileWriter, name string) (string, error) {
	profile, err := domain.ParseProfile(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := writer.Render(&buf, catalog.For(profile)); err != nil {
		return "", fmt.Errorf("rendering %s: %w", profile, err)
	}
	return buf.String(), nil
}

// jsonResult marshals v into a JSON text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
