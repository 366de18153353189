package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Setup(&buf, "info", "json", true)
	require.NoError(t, err)

	logger.Info().Int("rows", 3).Msg("loaded input")
	logger.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded input", entry["message"])
	assert.Equal(t, float64(3), entry["rows"])
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Setup(&buf, "DEBUG", "pretty", true)
	require.NoError(t, err)

	logger.Debug().Str("column", "ID").Msg("parsed filter")
	assert.Contains(t, buf.String(), "parsed filter")
	assert.Contains(t, buf.String(), "column=ID")
}

func TestSetup_Invalid(t *testing.T) {
	var buf bytes.Buffer

	_, err := Setup(&buf, "loud", "json", true)
	assert.Error(t, err)

	_, err = Setup(&buf, "info", "xml", true)
	assert.Error(t, err)
}
