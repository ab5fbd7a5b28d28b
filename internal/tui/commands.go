package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
)

type charactersLoadedMsg struct {
	characters []*dnd5e.Character
	selectID   string
	err        error
}

type characterSavedMsg struct {
	character *dnd5e.Character
	status    string
	err       error
}

type characterCreatedMsg struct {
	character *dnd5e.Character
	err       error
}

type characterDeletedMsg struct {
	name string
	err  error
}

type rollResolvedMsg struct {
	text string
	err  error
}

type abilityScoresRolledMsg struct {
	scores []int
	err    error
}

// editFunc applies one change through the character service
type editFunc func(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error)

func (m Model) loadCharacters(selectID string) tea.Cmd {
	ctx, svc := m.ctx, m.characters
	return func() tea.Msg {
		out, err := svc.List(ctx, &character.ListInput{})
		if err != nil {
			return charactersLoadedMsg{err: err}
		}
		return charactersLoadedMsg{characters: out.Characters, selectID: selectID}
	}
}

func (m Model) edit(id, status string, fn editFunc) tea.Cmd {
	ctx, svc := m.ctx, m.characters
	return func() tea.Msg {
		c, err := fn(ctx, svc, id)
		if err != nil {
			return characterSavedMsg{err: err}
		}
		return characterSavedMsg{character: c, status: status}
	}
}

func (m Model) createCharacter(input character.CreateInput) tea.Cmd {
	ctx, svc := m.ctx, m.characters
	return func() tea.Msg {
		out, err := svc.Create(ctx, &input)
		if err != nil {
			return characterCreatedMsg{err: err}
		}
		return characterCreatedMsg{character: out.Character}
	}
}

func (m Model) deleteCharacter(c *dnd5e.Character) tea.Cmd {
	ctx, svc := m.ctx, m.characters
	id, name := c.ID, c.Name
	return func() tea.Msg {
		if _, err := svc.Delete(ctx, &character.DeleteInput{ID: id}); err != nil {
			return characterDeletedMsg{err: err}
		}
		return characterDeletedMsg{name: name}
	}
}

// roll resolves token for c, or as plain dice when no character is selected
func (m Model) roll(c *dnd5e.Character, token string) tea.Cmd {
	ctx, svc := m.ctx, m.dice
	if c == nil {
		return func() tea.Msg {
			out, err := svc.RollDice(ctx, &dicesvc.RollDiceInput{Notation: token})
			if err != nil {
				return rollResolvedMsg{err: err}
			}
			return rollResolvedMsg{text: "Rolled " + out.Result.String()}
		}
	}

	id, name := c.ID, c.Name
	return func() tea.Msg {
		out, err := svc.Roll(ctx, &dicesvc.RollInput{CharacterID: id, Token: token})
		if err != nil {
			return rollResolvedMsg{err: err}
		}
		return rollResolvedMsg{text: fmt.Sprintf("%s rolls %s", name, out.Resolution)}
	}
}

func (m Model) rollAbilityScores(entityID, method string) tea.Cmd {
	ctx, svc := m.ctx, m.dice
	return func() tea.Msg {
		out, err := svc.RollAbilityScores(ctx, &dicesvc.RollAbilityScoresInput{
			EntityID: entityID,
			Method:   method,
		})
		if err != nil {
			return abilityScoresRolledMsg{err: err}
		}
		return abilityScoresRolledMsg{scores: out.Scores}
	}
}

func adjustHP(delta int) editFunc {
	return func(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error) {
		out, err := svc.AdjustHP(ctx, &character.AdjustHPInput{ID: id, Delta: delta})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}
}

func levelUp(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error) {
	out, err := svc.LevelUp(ctx, &character.LevelUpInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func adjustSpellSlot(level, delta int) editFunc {
	return func(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error) {
		out, err := svc.AdjustSpellSlot(ctx, &character.AdjustSpellSlotInput{ID: id, Level: level, Delta: delta})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}
}

func addItem(item dnd5e.InventoryItem) editFunc {
	return func(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error) {
		out, err := svc.AddItem(ctx, &character.AddItemInput{ID: id, Item: item})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}
}

func removeLastItem(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error) {
	out, err := svc.RemoveLastItem(ctx, &character.RemoveLastItemInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// reload re-reads the stored character; "save" in the edit view uses it to
// confirm what is on disk
func reload(ctx context.Context, svc character.Service, id string) (*dnd5e.Character, error) {
	out, err := svc.Get(ctx, &character.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}
