package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// ProgressBar is a horizontal bar sized to fill Width, minus whatever
// the label and percent readout take up.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // " 100%"
	}

	// Never collapse below a visible sliver of bar.
	width := p.Width - reserved
	if width < 4 {
		width = 4
	}

	filled := clamp(int(float64(width)*p.Percent), 0, width)
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled)))

	if p.ShowPercent {
		pct := clamp(int(p.Percent*100), 0, 100)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d%%", pct)))
	}

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
