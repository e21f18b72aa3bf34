package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Pathfinder styling.
type TextInput struct {
	Model   textinput.Model
	errText string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with any pending error line.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errText != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errText)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetError attaches an error line under the input. Cleared on Reset.
func (t *TextInput) SetError(text string) {
	t.errText = text
}

// Reset clears the input value and error state.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.errText = ""
}
