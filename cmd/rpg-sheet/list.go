package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List characters",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Characters.List(ctx, &character.ListInput{})
				if err != nil {
					return err
				}

				if len(out.Characters) == 0 {
					printf(cmd, "No characters yet. Create one with 'rpg-sheet create --name ...'\n")
					return nil
				}

				rows := make([][]string, len(out.Characters))
				for i, c := range out.Characters {
					rows[i] = []string{
						c.ID,
						c.Name,
						strconv.Itoa(c.Level),
						c.Race + " " + c.Class,
						fmt.Sprintf("%d/%d", c.CurrentHP, c.MaxHP),
						strconv.Itoa(c.ArmorClass),
					}
				}

				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("ID", "Name", "Lv", "Race / Class", "HP", "AC").
					Rows(rows...)
				printf(cmd, "%s\n", t.Render())
				return nil
			})
		},
	}
}
