package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info", "json")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("profile", "novice").Msg("wrote")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "wrote", event["message"])
	assert.Equal(t, "novice", event["profile"])
	assert.Equal(t, "info", event["level"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug", "console")
	require.NoError(t, err)

	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "DBG")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "loud", "console")
	assert.Error(t, err)

	_, err = logging.New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorContains(t, err, "unknown log format")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logging.Nop().Info().Msg("x") })
}
