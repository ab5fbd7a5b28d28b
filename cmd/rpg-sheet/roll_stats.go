package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
)

func newRollStatsCmd(opts *rootOptions) *cobra.Command {
	var (
		method   string
		entityID string
	)

	cmd := &cobra.Command{
		Use:   "roll-stats",
		Short: "Roll six ability scores",
		Long: `Roll six ability scores in STR DEX CON INT WIS CHA order. The standard
method rolls 4d6 and drops the lowest die; classic rolls 3d6.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Dice.RollAbilityScores(ctx, &dicesvc.RollAbilityScoresInput{
					EntityID: entityID,
					Method:   method,
				})
				if err != nil {
					return err
				}

				abilities := dnd5e.Abilities()
				for i, roll := range out.Rolls {
					label := ""
					if i < len(abilities) {
						label = abilities[i].Short()
					}
					printf(cmd, "%s %2d  %v", label, roll.Total, roll.Dice)
					if len(roll.Dropped) > 0 {
						printf(cmd, " dropped %v", roll.Dropped)
					}
					printf(cmd, "\n")
				}
				printf(cmd, "\nScores: %v\n", out.Scores)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&method, "method", dicesvc.MethodStandard, "standard (4d6 drop lowest) or classic (3d6)")
	cmd.Flags().StringVar(&entityID, "entity", "cli", "history key the rolls are kept under")
	return cmd
}
