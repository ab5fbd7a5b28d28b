package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
)

type createOptions struct {
	name       string
	class      string
	race       string
	level      int
	scores     map[dnd5e.Ability]*int
	maxHP      int
	armorClass int
	speed      int
	skills     []string
	slots      []int
	items      []string
	notes      string
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	co := &createOptions{scores: make(map[dnd5e.Ability]*int)}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a character",
		Long: `Create a character. Fields left out get the same defaults as the
terminal UI wizard: Unnamed, Fighter, Human, level 1, 10 HP, AC 10,
speed 30 and 10 in every ability.`,
		Example: `  rpg-sheet create --name Mira --class Ranger --race Elf --level 3 \
    --dex 16 --wis 14 --hp 24 --ac 14 --skill stealth,survival --item "Arrows x20"`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Characters.Create(ctx, co.input(cmd))
				if err != nil {
					return err
				}
				printf(cmd, "Created %s (%s)\n", out.Character.Name, out.Character.ID)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&co.name, "name", "", "character name")
	flags.StringVar(&co.class, "class", "", "class")
	flags.StringVar(&co.race, "race", "", "race")
	flags.IntVar(&co.level, "level", 0, "level")
	for _, ability := range dnd5e.Abilities() {
		score := new(int)
		co.scores[ability] = score
		flags.IntVar(score, string(ability), 0, ability.Name()+" score")
	}
	flags.IntVar(&co.maxHP, "hp", 0, "maximum hit points")
	flags.IntVar(&co.armorClass, "ac", 0, "armor class")
	flags.IntVar(&co.speed, "speed", 0, "speed in feet")
	flags.StringSliceVar(&co.skills, "skill", nil, "skill proficiency (repeat or comma separate)")
	flags.IntSliceVar(&co.slots, "slots", nil, "spell slots per level, e.g. 4,2")
	flags.StringArrayVar(&co.items, "item", nil, `inventory item, e.g. "Torch x3" (repeatable)`)
	flags.StringVar(&co.notes, "notes", "", "free-text notes")

	return cmd
}

func (co *createOptions) input(cmd *cobra.Command) *character.CreateInput {
	input := &character.CreateInput{
		Name:               co.name,
		Class:              co.class,
		Race:               co.race,
		Level:              co.level,
		MaxHP:              co.maxHP,
		ArmorClass:         co.armorClass,
		Speed:              co.speed,
		SkillProficiencies: co.skills,
		SpellSlots:         co.slots,
		Notes:              co.notes,
	}

	// Scores not given on the command line keep the default
	var abilities map[dnd5e.Ability]int
	for ability, score := range co.scores {
		if !cmd.Flags().Changed(string(ability)) {
			continue
		}
		if abilities == nil {
			abilities = make(map[dnd5e.Ability]int, len(co.scores))
			for _, a := range dnd5e.Abilities() {
				abilities[a] = dnd5e.DefaultScore
			}
		}
		abilities[ability] = *score
	}
	input.Abilities = abilities

	for _, text := range co.items {
		input.Inventory = append(input.Inventory, dnd5e.ParseInventoryItem(text))
	}
	return input
}
