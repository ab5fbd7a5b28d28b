package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
)

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <character-id>",
		Short: "Delete a character",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := a.Characters.Delete(ctx, &character.DeleteInput{ID: args[0]}); err != nil {
					return err
				}
				printf(cmd, "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}
