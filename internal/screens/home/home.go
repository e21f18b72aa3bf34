package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/router"
	"github.com/futurelink/pathfinder/internal/screen"
	profilescreen "github.com/futurelink/pathfinder/internal/screens/profile"
	quizscreen "github.com/futurelink/pathfinder/internal/screens/quiz"
	sess "github.com/futurelink/pathfinder/internal/session"
	"github.com/futurelink/pathfinder/internal/ui/components"
	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	state     *sess.State
	menu      components.Menu
	completed int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(state *sess.State) *HomeScreen {
	items := []components.MenuItem{
		{Label: "เริ่มทำแบบทดสอบ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(state)}
			}
		}},
		{Label: "โปรไฟล์ของฉัน", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(state)}
			}
		}},
		{Label: "ออกจากโปรแกรม", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		state:     state,
		menu:      components.NewMenu(items),
		completed: state.CompletedQuizzes(context.Background()),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.state.Profile

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("สวัสดี %s! %s", p.DisplayName(), p.Avatar))
	sections = append(sections, title)

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("พร้อมค้นหาเส้นทางอาชีพในฝันของคุณหรือยัง?")
	sections = append(sections, subtitle)
	sections = append(sections, "")

	sections = append(sections, h.renderStatsBar(width))
	sections = append(sections, "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStatsBar(width int) string {
	p := h.state.Profile

	stat := func(icon, label string, value int) string {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(icon) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(" %d ", value)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}

	stats := strings.Join([]string{
		stat("⭐", "คะแนน", p.Points),
		stat("📈", "ระดับ", p.Level),
		stat("🏅", "เหรียญตรา", len(p.Badges)),
		stat("✅", "แบบทดสอบ", h.completed),
	}, "    ")

	barWidth := min(width-8, 64)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Width(barWidth).
		Align(lipgloss.Center).
		Render(stats)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
