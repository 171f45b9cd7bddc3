package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpadapter "github.com/zuucrates/cargo-configure/internal/adapters/inbound/mcp"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/logging"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

func TestNewServer(t *testing.T) {
	s := mcpadapter.NewServer(domain.DefaultConfig(), logging.Nop(), "test")
	require.NotNil(t, s)
}

func TestServerHasTools(t *testing.T) {
	s := mcpadapter.NewServer(domain.DefaultConfig(), logging.Nop(), "test")
	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"cargo_configure_list_lints",
		"cargo_configure_get_lint",
		"cargo_configure_render_profile",
	}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}
