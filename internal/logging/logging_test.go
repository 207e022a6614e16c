package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "info", Format: FormatJSON, Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("watch")
	logger.Info().Str("path", "theme.toml").Msg("reloaded")
	logger.Debug().Msg("suppressed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "watch", entry["component"])
	assert.Equal(t, "theme.toml", entry["path"])
	assert.Equal(t, "reloaded", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "warn", Format: FormatConsole, NoColor: true, Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("cli")
	logger.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.Contains(t, buf.String(), "component=cli")
}

func TestInitRejectsBadConfig(t *testing.T) {
	assert.Error(t, Init(Config{Format: "xml"}))
	assert.Error(t, Init(Config{Level: "nope"}))
}
