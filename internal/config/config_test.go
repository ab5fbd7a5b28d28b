package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

var envKeys = []string{
	"RPG_SHEET_DB",
	"RPG_SHEET_LOG_FILE",
	"RPG_SHEET_LOG_LEVEL",
	"RPG_SHEET_MIN_LEVEL",
	"RPG_SHEET_MAX_LEVEL",
	"RPG_SHEET_REDIS_URL",
	"RPG_SHEET_HISTORY_TTL",
	"RPG_SHEET_MAX_HISTORY",
	"RPG_SHEET_SEED",
}

// clearEnv unsets every config variable for the test and restores the
// previous values afterwards, including anything godotenv set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		prev, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "shito.sqlite3", cfg.DBPath)
	assert.Equal(t, "rpg-sheet.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, dnd5e.DefaultLevelRange(), cfg.Levels())
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.HistoryTTL)
	assert.Equal(t, 100, cfg.MaxHistory)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPG_SHEET_DB", ":memory:")
	t.Setenv("RPG_SHEET_LOG_LEVEL", "debug")
	t.Setenv("RPG_SHEET_MAX_LEVEL", "30")
	t.Setenv("RPG_SHEET_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("RPG_SHEET_HISTORY_TTL", "90m")
	t.Setenv("RPG_SHEET_SEED", "42")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, dnd5e.LevelRange{Min: 1, Max: 30}, cfg.Levels())
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, 90*time.Minute, cfg.HistoryTTL)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "RPG_SHEET_DB=party.sqlite3\nRPG_SHEET_LOG_LEVEL=warn\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "party.sqlite3", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPG_SHEET_DB", "from-env.sqlite3")
	path := writeEnvFile(t, "RPG_SHEET_DB=from-file.sqlite3\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.sqlite3", cfg.DBPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "unknown log level", key: "RPG_SHEET_LOG_LEVEL", value: "loud", field: "RPG_SHEET_LOG_LEVEL"},
		{name: "inverted level range", key: "RPG_SHEET_MIN_LEVEL", value: "25", field: "RPG_SHEET_MIN_LEVEL"},
		{name: "negative ttl", key: "RPG_SHEET_HISTORY_TTL", value: "-1h", field: "RPG_SHEET_HISTORY_TTL"},
		{name: "zero history", key: "RPG_SHEET_MAX_HISTORY", value: "0", field: "RPG_SHEET_MAX_HISTORY"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, errors.GetFieldErrors(err), tc.field)
		})
	}
}

func TestLoadRejectsUnparsableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPG_SHEET_MAX_LEVEL", "twenty")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
