package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// Button is a focusable action button. Only the Active button on a
// screen reacts to enter.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	style := theme.ButtonInactive
	if b.Active {
		style = theme.ButtonActive
	}
	return style.Render("  ▸ " + b.Label + " ")
}
