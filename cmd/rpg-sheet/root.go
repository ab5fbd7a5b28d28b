package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// rootOptions are the persistent flags. Flags that were set win over the
// environment and the .env file.
type rootOptions struct {
	envFile  string
	dbPath   string
	logFile  string
	logLevel string
	redisURL string
	seed     uint64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rpg-sheet",
		Short: "Tabletop character sheets in your terminal",
		Long: `rpg-sheet keeps D&D 5e style character sheets in a local SQLite file.
Run it without a command to open the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to read before the environment")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database file (RPG_SHEET_DB)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (RPG_SHEET_LOG_FILE)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (RPG_SHEET_LOG_LEVEL)")
	flags.StringVar(&opts.redisURL, "redis-url", "", "keep roll history in Redis (RPG_SHEET_REDIS_URL)")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible dice (RPG_SHEET_SEED)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flag")
	})

	cmd.AddCommand(newTUICmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newCreateCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newRollCmd(opts))
	cmd.AddCommand(newRollStatsCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))

	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = o.dbPath
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("redis-url") {
		cfg.RedisURL = o.redisURL
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp opens the application for the duration of fn
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

// usageArgs marks positional argument errors as invalid input
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.InvalidArgument(err.Error())
		}
		return nil
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
