package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := logging.ParseLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}

	_, err := logging.ParseLevel("loud")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("character created", "character_id", "char_1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "character created", record["msg"])
	assert.Equal(t, "char_1", record["character_id"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rpg-sheet.log")

	logger, closer, err := logging.Open(path, "debug")
	require.NoError(t, err)
	logger.Debug("first")
	require.NoError(t, closer.Close())

	logger, closer, err = logging.Open(path, "debug")
	require.NoError(t, err)
	logger.Debug("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	assert.Len(t, lines, 2)
}

func TestOpenRejectsUnknownLevel(t *testing.T) {
	_, _, err := logging.Open(filepath.Join(t.TempDir(), "x.log"), "chatty")
	assert.Error(t, err)
}
