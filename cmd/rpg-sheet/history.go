package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <character-id>",
		Short: "Show a character's recent rolls",
		Long: `Show a character's recent rolls, oldest first. History outlives the
process only when a Redis URL is configured; otherwise it lasts for one
terminal UI session.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Dice.History(ctx, &dicesvc.HistoryInput{CharacterID: args[0]})
				if err != nil {
					return err
				}

				if len(out.Rolls) == 0 {
					printf(cmd, "No rolls recorded for %s\n", args[0])
					return nil
				}

				for _, roll := range out.Rolls {
					printf(cmd, "%s  %-20s %-14s %v", roll.RolledAt.Local().Format(time.DateTime), roll.Description, roll.Notation, roll.Dice)
					if len(roll.Dropped) > 0 {
						printf(cmd, " dropped %v", roll.Dropped)
					}
					printf(cmd, " = %d\n", roll.Total)
				}
				printf(cmd, "\n%d rolls, kept until %s\n", len(out.Rolls), out.ExpiresAt.Local().Format(time.DateTime))
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear <character-id>",
		Short: "Forget a character's rolls",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Dice.ClearHistory(ctx, &dicesvc.ClearHistoryInput{CharacterID: args[0]})
				if err != nil {
					return err
				}
				printf(cmd, "Cleared %d rolls for %s\n", out.RollsDeleted, args[0])
				return nil
			})
		},
	})

	return cmd
}
