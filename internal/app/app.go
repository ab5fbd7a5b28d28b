// Package app wires configuration, storage and services together for the
// command line and the terminal UI.
package app

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/logging"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
)

// App holds the wired services. Close releases the database, the Redis
// connection and the log file.
type App struct {
	Config     *config.Config
	Characters character.Service
	Dice       dicesvc.Service

	// HistoryBackend is "redis" or "memory"
	HistoryBackend string

	closers []func() error
}

// Open builds the application from cfg and installs the file logger as the
// default slog logger
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{Config: cfg}

	logger, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	a.closers = append(a.closers, logFile.Close)

	clk := clock.New()

	repo, err := characterrepo.OpenSQLite(ctx, &characterrepo.SQLiteConfig{
		Path:  cfg.DBPath,
		Clock: clk,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to open character store")
	}
	a.closers = append(a.closers, repo.Close)

	sessions, err := a.openSessions(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, err
	}

	characters, err := character.New(&character.Config{
		CharacterRepo: repo,
		IDGenerator:   idgen.NewShortUUID("char", 8),
		LevelRange:    cfg.Levels(),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create character service")
	}
	a.Characters = characters

	var source dice.Source
	if cfg.Seed != 0 {
		slog.InfoContext(ctx, "using seeded dice", "seed", cfg.Seed)
		source = dice.NewSeeded(cfg.Seed)
	} else {
		source = rpgtoolkit.NewSource(nil)
	}

	diceService, err := dicesvc.NewOrchestrator(&dicesvc.Config{
		CharacterRepo:   repo,
		DiceSessionRepo: sessions,
		IDGenerator:     idgen.NewUUID("roll"),
		Source:          source,
		Clock:           clk,
		HistoryTTL:      cfg.HistoryTTL,
		MaxHistory:      cfg.MaxHistory,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create dice service")
	}
	a.Dice = diceService

	slog.DebugContext(ctx, "application ready",
		"db", cfg.DBPath,
		"history", a.HistoryBackend)

	return a, nil
}

// openSessions connects to Redis when a URL is configured. An unreachable
// server falls back to in-memory history.
func (a *App) openSessions(ctx context.Context, cfg *config.Config, clk clock.Clock) (dicesession.Repository, error) {
	if cfg.RedisURL == "" {
		a.HistoryBackend = "memory"
		return dicesession.NewInMemory(clk), nil
	}

	client, err := redisclient.NewClientFromURL(cfg.RedisURL, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
	}

	if err := redisclient.Ping(ctx, client); err != nil {
		slog.WarnContext(ctx, "redis unavailable, keeping roll history in memory",
			"error", err)
		_ = client.Close()
		a.HistoryBackend = "memory"
		return dicesession.NewInMemory(clk), nil
	}
	a.closers = append(a.closers, client.Close)

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll history store")
	}

	a.HistoryBackend = "redis"
	return repo, nil
}

// Close releases resources in reverse order of acquisition
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Error("failed to close resource", "error", err)
		}
	}
	a.closers = nil
}
