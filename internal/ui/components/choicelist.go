package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// Choice is a single selectable option. Caption is an optional secondary
// line shown below the label (used for image references on picture options).
type Choice struct {
	Value   string
	Label   string
	Caption string
}

// ChoiceList is a selector over a fixed set of choices. Unlike a quiz with
// right and wrong answers there is no correct index; the chosen value is
// whatever the user confirms.
type ChoiceList struct {
	Choices  []Choice
	Selected int
	Cards    bool // render each choice as a bordered card
}

// NewChoiceList creates a choice list.
func NewChoiceList(choices []Choice, cards bool) ChoiceList {
	return ChoiceList{
		Choices: choices,
		Cards:   cards,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. It reports the confirmed value via
// the second return when enter is pressed.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, string, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, "", false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(c.Choices) {
			c.Selected = idx
			return c, c.Choices[idx].Value, true
		}
	case "enter":
		if c.Selected >= 0 && c.Selected < len(c.Choices) {
			return c, c.Choices[c.Selected].Value, true
		}
	}

	return c, "", false
}

// View renders the choice list.
func (c ChoiceList) View(width int) string {
	var b strings.Builder

	labels := []string{"1", "2", "3", "4"}

	for i, choice := range c.Choices {
		label := choice.Label
		if i < len(labels) {
			label = fmt.Sprintf("%s)  %s", labels[i], choice.Label)
		}

		if c.Cards {
			b.WriteString(c.renderCard(i, label, choice.Caption, width))
		} else {
			b.WriteString(c.renderLine(i, label))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c ChoiceList) renderLine(i int, label string) string {
	prefix := "  "
	if i == c.Selected {
		prefix = "▸ "
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(prefix + label)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(prefix + label)
}

func (c ChoiceList) renderCard(i int, label, caption string, width int) string {
	cardWidth := width - 4
	if cardWidth > 56 {
		cardWidth = 56
	}
	if cardWidth < 16 {
		cardWidth = 16
	}

	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label)
	if caption != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(caption)
	}

	border := theme.Border
	if i == c.Selected {
		border = theme.Primary
	}

	return lipgloss.NewStyle().
		Width(cardWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}
