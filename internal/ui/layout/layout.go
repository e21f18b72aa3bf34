package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is the height left for screen content inside the frame.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage fills the whole terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: app name on the left, the active screen
// title centered, and the profile strip (avatar, level, points) on the
// right.
func RenderHeader(title, avatar string, level, points, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Pathfinder")

	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	profileStrip := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Text).Render(avatar),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("ระดับ %d", level)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("⭐ %d", points)),
	}, "  ")

	// Pad so the title sits at the true center regardless of how wide the
	// name and profile strip are. Degrades to single spaces when cramped.
	inner := max(width-4, 0)
	leftPad := max((inner-lipgloss.Width(center))/2-lipgloss.Width(name), 1)
	rightPad := max(inner-lipgloss.Width(name)-leftPad-lipgloss.Width(center)-lipgloss.Width(profileStrip), 1)

	row := name + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + profileStrip

	return barStyle(width).Render(row)
}

// RenderFooter draws the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return barStyle(width).Render("  " + strings.Join(parts, "   "))
}

func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderFrame stacks header, content, and footer into the full terminal,
// stretching the content band to fill the leftover rows.
func RenderFrame(header, content, footer string, width, height int) string {
	band := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(width).
		Height(band).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
