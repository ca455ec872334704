package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer, level string, verbose bool) *Logger {
	return NewLogger(LoggerOptions{Level: level, Format: "json", Output: buf, Verbose: verbose})
}

// decodeLines parses every JSON log line written to buf
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    []string
	}{
		{level: "info", want: []string{"info", "warn", "error"}},
		{level: "warn", want: []string{"warn", "error"}},
		{level: "error", want: []string{"error"}},
		{level: "debug", want: []string{"debug", "info", "warn", "error"}},
		{level: "bogus", want: []string{"info", "warn", "error"}},
		{level: "error", verbose: true, want: []string{"debug", "info", "warn", "error"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := jsonLogger(&buf, tt.level, tt.verbose)

			logger.Debug().Msg("m")
			logger.Info().Msg("m")
			logger.Warn().Msg("m")
			logger.Error().Msg("m")

			var got []string
			for _, entry := range decodeLines(t, &buf) {
				got = append(got, entry["level"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_CloneFields(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info", false).
		WithComponent("git").
		WithBackend("exec").
		WithURL("https://github.com/user/repo.git").
		Info().Msg("Cloning")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "git", lines[0]["component"])
	assert.Equal(t, "exec", lines[0]["backend"])
	assert.Equal(t, "https://github.com/user/repo.git", lines[0]["url"])
	assert.Equal(t, "Cloning", lines[0]["message"])
	assert.Contains(t, lines[0], "time")
}

func TestLogger_DerivedLoggersAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	base := jsonLogger(&buf, "info", false)
	_ = base.WithComponent("tui")

	base.Info().Msg("plain")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "component")
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(LoggerOptions{Level: "info", Format: "pretty", Output: &buf}).
		WithComponent("extract").
		Info().Msg("Extraction complete")

	out := buf.String()
	assert.Contains(t, out, "Extraction complete")
	assert.Contains(t, out, "component=")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithComponent("workspace").Error().Msg("dropped")
	})
}
