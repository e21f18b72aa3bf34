// Package theme holds the FutureLink Hub palette and the few shared
// styles. Screens build their own styles from the palette colors.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Warm pink with amber highlights on a deep plum background.
var (
	Primary   = lipgloss.Color("#F472B6") // pink
	Secondary = lipgloss.Color("#FBBF24") // amber
	Accent    = lipgloss.Color("#60A5FA") // sky blue
	Success   = lipgloss.Color("#34D399") // emerald
	Error     = lipgloss.Color("#F87171") // red
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#2A2438")
	Border    = lipgloss.Color("#4C4660")
)

// Shared component styles.
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
