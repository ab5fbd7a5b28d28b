package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)
)

// View renders the body for the current mode above the status line
func (m Model) View() string {
	var body string
	switch m.mode {
	case modeCreate, modeRoll, modeAddItem:
		body = m.viewPrompt()
	case modeDetails, modeEdit:
		body = m.viewDetails()
	default:
		body = m.viewList()
	}

	status := m.pane().Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m Model) pane() lipgloss.Style {
	if m.width > 4 {
		return paneStyle.Width(m.width - 2)
	}
	return paneStyle
}

func (m Model) viewList() string {
	title := titleStyle.Render("Characters")
	if len(m.items) == 0 {
		return m.pane().Render(title + "\n\n" + dimStyle.Render("No characters yet. Press n to create one."))
	}

	rows := make([][]string, len(m.items))
	for i, c := range m.items {
		marker := " "
		if i == m.selected {
			marker = "▶"
		}
		rows[i] = []string{
			marker,
			c.Name,
			strconv.Itoa(c.Level),
			c.Race + " " + c.Class,
			fmt.Sprintf("%d/%d", c.CurrentHP, c.MaxHP),
			strconv.Itoa(c.ArmorClass),
		}
	}

	selected := m.selected
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderRow(false).
		Headers("", "Name", "Lv", "Race / Class", "HP", "AC").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return selectedStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

func (m Model) viewPrompt() string {
	title := "Roll: ability, skill or dice"
	switch m.mode {
	case modeCreate:
		if m.wizard != nil {
			title = m.wizard.title()
		}
	case modeAddItem:
		title = "Add item"
	case modeRoll:
		if c := m.current(); c != nil {
			title = "Roll for " + c.Name
		}
	}
	return m.pane().Render(titleStyle.Render(title) + "\n\n> " + m.input + "_")
}

func (m Model) viewDetails() string {
	c := m.current()
	if c == nil {
		return m.pane().Render("No character selected")
	}

	tabs := make([]string, tabCount)
	for i, name := range tabTitles {
		if i == m.tab {
			tabs[i] = selectedStyle.Render("[" + name + "]")
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}
	header := strings.Join(tabs, "  ")
	if m.mode == modeEdit {
		header += "  " + titleStyle.Render("EDITING")
	}

	var content string
	switch m.tab {
	case tabSkills:
		content = renderSkills(c)
	case tabInventory:
		content = renderInventory(c)
	default:
		content = m.renderGeneral(c)
	}

	return m.pane().Render(header + "\n\n" + content)
}

func (m Model) renderGeneral(c *dnd5e.Character) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s the %s %s (Lv %d)", c.Name, c.Race, c.Class, c.Level)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "HP %d/%d  AC %d  SPD %d  Prof %s\n\n",
		c.CurrentHP, c.MaxHP, c.ArmorClass, c.Speed, formatModifier(engine.ProficiencyBonus(c.Level)))

	abilities := dnd5e.Abilities()
	headers := make([]string, len(abilities))
	scores := make([]string, len(abilities))
	mods := make([]string, len(abilities))
	for i, a := range abilities {
		headers[i] = a.Short()
		scores[i] = strconv.Itoa(c.AbilityScores.Get(a))
		mods[i] = formatModifier(engine.AbilityModifier(c, a))
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(scores, mods).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n\nSpell slots:")

	for i, n := range c.SpellSlots {
		slot := fmt.Sprintf("%d:%d", i+1, n)
		if m.mode == modeEdit && i+1 == m.slotLevel {
			slot = selectedStyle.Render("[" + slot + "]")
		}
		b.WriteString(" " + slot)
	}

	if c.Notes != "" {
		b.WriteString("\n\nNotes:\n" + c.Notes)
	}
	return b.String()
}

func renderSkills(c *dnd5e.Character) string {
	lines := engine.SkillTable(c)
	rows := make([][]string, len(lines))
	for i, line := range lines {
		prof := ""
		if line.Proficient {
			prof = "*"
		}
		rows[i] = []string{line.Skill.DisplayName(), line.Ability.Short(), prof, formatModifier(line.Bonus)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Skill", "Ability", "Prof", "Bonus").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(lines) && lines[row].Proficient {
				return selectedStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return t.Render()
}

func renderInventory(c *dnd5e.Character) string {
	if len(c.Inventory) == 0 {
		return dimStyle.Render("(empty)")
	}

	var b strings.Builder
	for i, item := range c.Inventory {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + item.String())
		if item.Description != "" {
			b.WriteString(dimStyle.Render(" (" + item.Description + ")"))
		}
	}
	return b.String()
}
