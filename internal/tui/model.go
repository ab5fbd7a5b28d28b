// Package tui is the full-screen character sheet: a list of characters,
// a tabbed detail view, in-place editing, a creation wizard and a roll
// prompt. All reads and writes go through the character and dice services.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

type mode int

const (
	modeList mode = iota
	modeDetails
	modeEdit
	modeAddItem
	modeCreate
	modeRoll
)

const (
	tabGeneral = iota
	tabSkills
	tabInventory
	tabCount
)

var tabTitles = [tabCount]string{"General", "Skills", "Inventory"}

// Config wires the model to its services
type Config struct {
	Characters character.Service
	Dice       dicesvc.Service

	// DraftIDs names the history session for ability scores rolled in the
	// wizard before the character has an id. Defaults to short UUIDs.
	DraftIDs idgen.Generator
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	return vb.Build()
}

// Model is the bubbletea model for the whole application
type Model struct {
	ctx        context.Context
	characters character.Service
	dice       dicesvc.Service
	draftIDs   idgen.Generator

	mode      mode
	rollFrom  mode
	items     []*dnd5e.Character
	selected  int
	tab       int
	slotLevel int
	input     string
	status    string
	wizard    *wizard
	busy      bool

	width  int
	height int
}

// New creates the model. ctx is used for every service call.
func New(ctx context.Context, cfg *Config) (Model, error) {
	if cfg == nil {
		return Model{}, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, errors.Wrap(err, "invalid tui config")
	}

	draftIDs := cfg.DraftIDs
	if draftIDs == nil {
		draftIDs = idgen.NewShortUUID("draft", 8)
	}

	return Model{
		ctx:        ctx,
		characters: cfg.Characters,
		dice:       cfg.Dice,
		draftIDs:   draftIDs,
		mode:       modeList,
		slotLevel:  1,
		status:     listStatus,
	}, nil
}

// Run starts the program on the alternate screen and blocks until the user
// quits or ctx is cancelled
func Run(ctx context.Context, cfg *Config) error {
	m, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "interrupted")
		}
		return errors.Wrap(err, "terminal ui failed")
	}
	return nil
}

// Init loads the character list
func (m Model) Init() tea.Cmd {
	return m.loadCharacters("")
}

// Update routes messages to the handler for the current mode
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeDetails:
			return m.updateDetails(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeAddItem:
			return m.updateAddItem(msg)
		case modeCreate:
			return m.updateCreate(msg)
		case modeRoll:
			return m.updateRoll(msg)
		default:
			return m.updateList(msg)
		}

	case charactersLoadedMsg:
		return m.onCharactersLoaded(msg), nil
	case characterSavedMsg:
		return m.onCharacterSaved(msg), nil
	case characterCreatedMsg:
		return m.onCharacterCreated(msg)
	case characterDeletedMsg:
		return m.onCharacterDeleted(msg)
	case rollResolvedMsg:
		return m.onRollResolved(msg), nil
	case abilityScoresRolledMsg:
		return m.onAbilityScoresRolled(msg), nil
	}

	return m, nil
}

func (m Model) current() *dnd5e.Character {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

func (m Model) onCharactersLoaded(msg charactersLoadedMsg) Model {
	m.busy = false
	if msg.err != nil {
		m.status = errorStatus(msg.err)
		return m
	}

	m.items = msg.characters
	if msg.selectID != "" {
		for i, c := range m.items {
			if c.ID == msg.selectID {
				m.selected = i
				break
			}
		}
	}
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

func (m Model) onCharacterSaved(msg characterSavedMsg) Model {
	m.busy = false
	if msg.err != nil {
		m.status = errorStatus(msg.err)
		return m
	}

	for i, c := range m.items {
		if c.ID == msg.character.ID {
			m.items[i] = msg.character
			break
		}
	}
	m.status = msg.status
	return m
}

func (m Model) onCharacterCreated(msg characterCreatedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		// Back to the last step; enter submits again
		if m.wizard != nil && m.wizard.done() {
			m.wizard.step = stepSkills
		}
		m.status = errorStatus(msg.err)
		return m, nil
	}

	m.wizard = nil
	m.mode = modeList
	m.input = ""
	m.status = fmt.Sprintf("Created %s.", msg.character.Name)
	return m, m.loadCharacters(msg.character.ID)
}

func (m Model) onCharacterDeleted(msg characterDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.status = errorStatus(msg.err)
		return m, nil
	}

	m.status = fmt.Sprintf("Deleted %s.", msg.name)
	return m, m.loadCharacters("")
}

func (m Model) onRollResolved(msg rollResolvedMsg) Model {
	m.busy = false
	if msg.err != nil {
		// Keep the prompt open so the token can be retyped
		m.status = errorStatus(msg.err)
		return m
	}

	m.mode = m.rollFrom
	m.input = ""
	m.status = msg.text
	return m
}

func (m Model) onAbilityScoresRolled(msg abilityScoresRolledMsg) Model {
	m.busy = false
	if msg.err != nil {
		m.status = errorStatus(msg.err)
		return m
	}
	if m.wizard == nil || m.wizard.step != stepAbilities {
		return m
	}

	m.wizard.setRolledScores(msg.scores)
	m.input = ""
	m.status = fmt.Sprintf("Rolled %s. %s", formatScores(msg.scores), m.wizard.prompt())
	return m
}

func errorStatus(err error) string {
	return "Error: " + errors.GetMessage(err)
}
