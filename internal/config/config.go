// Package config loads rpg-sheet settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// LogLevels lists the accepted values for LogLevel
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all configuration for the application
type Config struct {
	// DBPath is the SQLite database file, ":memory:" for a throwaway store
	DBPath string `env:"RPG_SHEET_DB" envDefault:"shito.sqlite3"`

	LogFile  string `env:"RPG_SHEET_LOG_FILE" envDefault:"rpg-sheet.log"`
	LogLevel string `env:"RPG_SHEET_LOG_LEVEL" envDefault:"info"`

	MinLevel int `env:"RPG_SHEET_MIN_LEVEL" envDefault:"1"`
	MaxLevel int `env:"RPG_SHEET_MAX_LEVEL" envDefault:"20"`

	// RedisURL keeps roll history in Redis when set, in memory otherwise
	RedisURL   string        `env:"RPG_SHEET_REDIS_URL"`
	HistoryTTL time.Duration `env:"RPG_SHEET_HISTORY_TTL" envDefault:"24h"`
	MaxHistory int           `env:"RPG_SHEET_MAX_HISTORY" envDefault:"100"`

	// Seed makes every roll reproducible when non-zero
	Seed uint64 `env:"RPG_SHEET_SEED"`
}

// Load reads the given .env files (".env" when none are named), then the
// process environment. Missing files are skipped. Variables already set in
// the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.InvalidArgumentf("failed to read %s: %v", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("RPG_SHEET_DB", c.DBPath, vb)
	errors.ValidateRequired("RPG_SHEET_LOG_FILE", c.LogFile, vb)
	errors.ValidateEnum("RPG_SHEET_LOG_LEVEL", c.LogLevel, LogLevels, vb)
	errors.ValidateMin("RPG_SHEET_MAX_HISTORY", c.MaxHistory, 1, vb)

	if err := c.Levels().Validate(); err != nil {
		vb.Field("RPG_SHEET_MIN_LEVEL", errors.GetMessage(err))
	}

	if c.HistoryTTL <= 0 {
		vb.Field("RPG_SHEET_HISTORY_TTL", "must be positive")
	}

	return vb.Build()
}

// Levels returns the configured level bounds
func (c *Config) Levels() dnd5e.LevelRange {
	return dnd5e.LevelRange{Min: c.MinLevel, Max: c.MaxLevel}
}
