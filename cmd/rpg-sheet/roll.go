package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
)

func newRollCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roll [character-id] <token>",
		Short: "Roll an ability, skill or dice",
		Long: `Roll a token. With a character id the token may be an ability
(str, dexterity), a skill (stealth, "animal handling") or dice notation,
optionally followed by adv or dis. When the arguments together read as
dice notation they are rolled without a character and nothing is recorded.`,
		Example: `  rpg-sheet roll 2d6+3
  rpg-sheet roll 2d6 + 3
  rpg-sheet roll char_1a2b3c4d stealth adv
  rpg-sheet roll char_1a2b3c4d "sleight of hand"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				notation := strings.Join(args, " ")
				if _, err := dice.Parse(notation); err == nil || len(args) == 1 {
					out, err := a.Dice.RollDice(ctx, &dicesvc.RollDiceInput{Notation: notation})
					if err != nil {
						return err
					}
					printf(cmd, "%s\n", out.Result)
					return nil
				}

				out, err := a.Dice.Roll(ctx, &dicesvc.RollInput{
					CharacterID: args[0],
					Token:       strings.Join(args[1:], " "),
				})
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", out.Resolution)
				return nil
			})
		},
	}
}
