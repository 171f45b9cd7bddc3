package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/zuucrates/cargo-configure/internal/domain"
	"github.com/zuucrates/cargo-configure/internal/domain/catalog"
)

const (
	catalogURI     = "cargo-configure://catalog"
	profilesPrefix = "cargo-configure://profiles/"
)

// catalogEntry is the per-lint summary served by the catalog resource.
type catalogEntry struct {
	ID             string               `json:"id"`
	Group          domain.LintGroup     `json:"group"`
	Applicability  domain.Applicability `json:"applicability"`
	Enabled        bool                 `json:"enabled"`
	ClippySeverity domain.Severity      `json:"clippy_severity"`
	Novice         domain.Severity      `json:"novice"`
	Expert         domain.Severity      `json:"expert"`
	Master         domain.Severity      `json:"master"`
}

// registerResources registers the catalog resources on the given server.
func registerResources(s *server.MCPServer, writer domain.ProfileWriter, logger *zerolog.Logger) {
	// 1. cargo-configure://catalog - every lint with its profile severities
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Lint Catalog",
			mcplib.WithResourceDescription("Every catalog lint with its clippy default and per-profile severities"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(logger),
	)

	// 2. cargo-configure://profiles/{name} - rendered profile file (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			profilesPrefix+"{name}",
			"Profile File",
			mcplib.WithTemplateDescription("TOML profile file for novice, expert or master"),
			mcplib.WithTemplateMIMEType("application/toml"),
		),
		handleProfileResource(writer, logger),
	)
}

func handleCatalogResource(logger *zerolog.Logger) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		defs := catalog.Definitions()
		entries := make([]catalogEntry, len(defs))
		for i, d := range defs {
			entries[i] = catalogEntry{
				ID:             d.ID,
				Group:          d.Group,
				Applicability:  d.Applicability,
				Enabled:        !d.Disabled,
				ClippySeverity: d.ClippySeverity,
				Novice:         d.Novice,
				Expert:         d.Expert,
				Master:         d.Master,
			}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}
		logger.Debug().Str("resource", catalogURI).Msg("mcp read")

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleProfileResource(writer domain.ProfileWriter, logger *zerolog.Logger) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name := profileName(request)
		if name == "" {
			return nil, fmt.Errorf("profile name is required")
		}

		text, err := renderProfile(writer, strings.TrimSuffix(name, ".toml"))
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("resource", request.Params.URI).Msg("mcp read")

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/toml",
				Text:     text,
			},
		}, nil
	}
}

// profileName reads the template variable, falling back to the URI suffix.
func profileName(request mcplib.ReadResourceRequest) string {
	switch v := request.Params.Arguments["name"].(type) {
	case string:
		if v != "" {
			return v
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(request.Params.URI, profilesPrefix)
}
