package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

const (
	listStatus    = "enter: details • n: new • e: edit • d: delete • r: roll • q: quit"
	detailsStatus = "h/l: switch tabs • e: edit • r: roll • esc: back"
	editStatus    = "+/-: hp • 1-9: slot level • [/]: adjust slot • a/A: add/remove item • l: level up • s: save • esc: back"
	addItemStatus = "Type item (e.g. Torch x3) then enter. esc: cancel"
	rollStatus    = "Type an ability, skill or dice (e.g. dex, stealth adv, 2d6+3) then enter. esc: cancel"
)

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		if m.current() != nil {
			m.mode = modeDetails
			m.status = detailsStatus
		}
	case "n":
		m.wizard = newWizard(m.draftIDs.Generate())
		m.mode = modeCreate
		m.input = ""
		m.status = m.wizard.prompt()
	case "e":
		if m.current() != nil {
			m.mode = modeEdit
			m.status = editStatus
		}
	case "d":
		if c := m.current(); c != nil && !m.busy {
			m.busy = true
			return m, m.deleteCharacter(c)
		}
	case "r":
		m.startRoll()
	}
	return m, nil
}

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.status = listStatus
	case "left", "h":
		m.prevTab()
	case "right", "l", "tab":
		m.nextTab()
	case "e":
		m.mode = modeEdit
		m.status = editStatus
	case "r":
		m.startRoll()
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.current()
	if c == nil {
		m.mode = modeList
		m.status = listStatus
		return m, nil
	}

	key := msg.String()
	switch key {
	case "esc":
		m.mode = modeList
		m.status = listStatus
		return m, nil
	case "left", "h":
		m.prevTab()
		return m, nil
	case "right", "tab":
		m.nextTab()
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.slotLevel = int(key[0] - '0')
		m.status = fmt.Sprintf("Editing: slot level %d selected", m.slotLevel)
		return m, nil
	case "a":
		m.mode = modeAddItem
		m.input = ""
		m.status = addItemStatus
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	var cmd tea.Cmd
	switch key {
	case "+", "=":
		if c.CurrentHP >= c.MaxHP {
			m.status = fmt.Sprintf("HP already at max (%d).", c.MaxHP)
			return m, nil
		}
		cmd = m.edit(c.ID, "HP +1.", adjustHP(1))
	case "-":
		cmd = m.edit(c.ID, "HP -1.", adjustHP(-1))
	case "l":
		cmd = m.edit(c.ID, "Level up!", levelUp)
	case "[":
		cmd = m.edit(c.ID, fmt.Sprintf("Slot level %d -1.", m.slotLevel), adjustSpellSlot(m.slotLevel, -1))
	case "]":
		cmd = m.edit(c.ID, fmt.Sprintf("Slot level %d +1.", m.slotLevel), adjustSpellSlot(m.slotLevel, 1))
	case "A":
		if len(c.Inventory) == 0 {
			m.status = "Inventory is empty."
			return m, nil
		}
		cmd = m.edit(c.ID, "Removed "+c.Inventory[len(c.Inventory)-1].String()+".", removeLastItem)
	case "s":
		cmd = m.edit(c.ID, "Saved.", reload)
	default:
		return m, nil
	}

	m.busy = true
	return m, cmd
}

func (m Model) updateAddItem(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeEdit
		m.input = ""
		m.status = editStatus
		return m, nil
	case tea.KeyEnter:
		c := m.current()
		text := strings.TrimSpace(m.input)
		m.mode = modeEdit
		m.input = ""
		if c == nil || text == "" {
			m.status = editStatus
			return m, nil
		}
		item := dnd5e.ParseInventoryItem(text)
		m.busy = true
		return m, m.edit(c.ID, "Added "+item.String()+".", addItem(item))
	}
	m.input = editInput(m.input, msg)
	return m, nil
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.wizard = nil
		m.mode = modeList
		m.input = ""
		m.status = listStatus
		return m, nil
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		return m.submitWizard()
	}
	m.input = editInput(m.input, msg)
	return m, nil
}

func (m Model) submitWizard() (tea.Model, tea.Cmd) {
	w := m.wizard

	if w.step == stepAbilities {
		if method, ok := rollRequest(m.input); ok {
			m.busy = true
			m.status = "Rolling ability scores..."
			return m, m.rollAbilityScores(w.draftID, method)
		}
	}

	if err := w.submit(m.input); err != nil {
		m.status = errorStatus(err)
		return m, nil
	}
	m.input = ""

	if w.done() {
		m.busy = true
		m.status = "Saving..."
		return m, m.createCharacter(w.input)
	}

	m.status = w.prompt()
	return m, nil
}

func (m Model) updateRoll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = m.rollFrom
		m.input = ""
		m.status = listStatus
		if m.rollFrom == modeDetails {
			m.status = detailsStatus
		}
		return m, nil
	case tea.KeyEnter:
		token := strings.TrimSpace(m.input)
		if token == "" || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.roll(m.current(), token)
	}
	m.input = editInput(m.input, msg)
	return m, nil
}

func (m *Model) startRoll() {
	m.rollFrom = m.mode
	m.mode = modeRoll
	m.input = ""
	m.status = rollStatus
}

func (m *Model) nextTab() {
	if m.tab < tabCount-1 {
		m.tab++
	}
}

func (m *Model) prevTab() {
	if m.tab > 0 {
		m.tab--
	}
}

// editInput applies a key to a single-line text field
func editInput(input string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace:
		if input == "" {
			return input
		}
		runes := []rune(input)
		return string(runes[:len(runes)-1])
	case tea.KeySpace:
		return input + " "
	case tea.KeyRunes:
		return input + string(msg.Runes)
	}
	return input
}
