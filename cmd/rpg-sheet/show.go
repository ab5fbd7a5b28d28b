package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <character-id>",
		Short: "Print a character sheet",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				sheet, err := a.Characters.Sheet(ctx, &character.SheetInput{ID: args[0]})
				if err != nil {
					return err
				}

				if asJSON {
					output, err := json.MarshalIndent(sheet, "", "  ")
					if err != nil {
						return errors.Wrap(err, "failed to marshal sheet")
					}
					printf(cmd, "%s\n", output)
					return nil
				}

				printf(cmd, "%s", renderSheet(sheet))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the sheet as JSON")
	return cmd
}

func renderSheet(sheet *character.SheetOutput) string {
	c := sheet.Character
	var b strings.Builder

	fmt.Fprintf(&b, "%s the %s %s (Lv %d)  [%s]\n", c.Name, c.Race, c.Class, c.Level, c.ID)
	fmt.Fprintf(&b, "HP %d/%d  AC %d  SPD %d  Prof %+d\n\n",
		c.CurrentHP, c.MaxHP, c.ArmorClass, c.Speed, sheet.ProficiencyBonus)

	abilities := dnd5e.Abilities()
	headers := make([]string, len(abilities))
	scores := make([]string, len(abilities))
	mods := make([]string, len(abilities))
	for i, ability := range abilities {
		headers[i] = ability.Short()
		scores[i] = strconv.Itoa(c.AbilityScores.Get(ability))
		mods[i] = fmt.Sprintf("%+d", sheet.Modifiers[ability])
	}
	b.WriteString(table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(scores, mods).
		Render())
	b.WriteString("\n\n")

	rows := make([][]string, len(sheet.Skills))
	for i, line := range sheet.Skills {
		prof := ""
		if line.Proficient {
			prof = "*"
		}
		rows[i] = []string{line.Skill.DisplayName(), line.Ability.Short(), prof, fmt.Sprintf("%+d", line.Bonus)}
	}
	b.WriteString(table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Skill", "Ability", "Prof", "Bonus").
		Rows(rows...).
		Render())
	b.WriteString("\n\nSpell slots:")
	for i, n := range c.SpellSlots {
		fmt.Fprintf(&b, " %d:%d", i+1, n)
	}
	b.WriteString("\n\nInventory:\n")
	if len(c.Inventory) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, item := range c.Inventory {
		b.WriteString("  - " + item.String())
		if item.Description != "" {
			b.WriteString(" (" + item.Description + ")")
		}
		b.WriteString("\n")
	}
	if c.Notes != "" {
		b.WriteString("\nNotes:\n" + c.Notes + "\n")
	}
	return b.String()
}
