package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. A Disabled item renders but
// can never hold the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by the arrow keys. The cursor wraps at
// both ends and skips disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// move advances the cursor by delta, wrapping and skipping disabled
// items. With every item disabled the cursor settles on -1.
func (m *Menu) move(delta int) {
	n := len(m.Items)
	if n == 0 {
		m.Selected = -1
		return
	}
	i := m.Selected
	for range m.Items {
		i = ((i+delta)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
	m.Selected = -1
}

func (m Menu) View() string {
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	plain := lipgloss.NewStyle().Foreground(theme.Text)
	dimmed := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(cursor.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(dimmed.Render("    " + item.Label))
		default:
			b.WriteString(plain.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
