package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/recommend"
	"github.com/futurelink/pathfinder/internal/router"
	"github.com/futurelink/pathfinder/internal/screen"
	"github.com/futurelink/pathfinder/internal/screens/home"
	profilescreen "github.com/futurelink/pathfinder/internal/screens/profile"
	quizscreen "github.com/futurelink/pathfinder/internal/screens/quiz"
	"github.com/futurelink/pathfinder/internal/screens/results"
	"github.com/futurelink/pathfinder/internal/screens/welcome"
	sess "github.com/futurelink/pathfinder/internal/session"
	"github.com/futurelink/pathfinder/internal/store"
	"github.com/futurelink/pathfinder/internal/ui/layout"
	"github.com/futurelink/pathfinder/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Options carries the dependencies assembled by the cmd layer.
type Options struct {
	EventRepo store.EventRepo
	Recommend *recommend.Service
}

// recommendDoneMsg is sent when the recommendation call finishes.
type recommendDoneMsg struct {
	Rec *recommend.Recommendations
	Err error
}

type spinnerTickMsg time.Time

// AppModel is the root Bubble Tea model. It owns the screen router, the
// session state, and the loading and error overlays that gate the
// quiz-to-results transition.
type AppModel struct {
	router    *router.Router
	state     *sess.State
	recommend *recommend.Service

	width  int
	height int

	loading      bool
	loadingFrame int
	errText      string
}

// newAppModel creates an AppModel starting on the welcome splash.
func newAppModel(opts Options) *AppModel {
	state := sess.NewState(opts.EventRepo)

	homeFactory := func() screen.Screen {
		return home.New(state)
	}

	return &AppModel{
		router:    router.New(welcome.New(homeFactory)),
		state:     state,
		recommend: opts.Recommend,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case quizscreen.CompletedMsg:
		return m, m.startRecommendation()

	case recommendDoneMsg:
		return m.handleRecommendDone(msg)

	case results.RestartMsg:
		m.state.Restart()
		return m, func() tea.Msg {
			return router.ResetScreenMsg{Screen: home.New(m.state)}
		}

	case spinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.loadingFrame++
		return m, m.spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The loading overlay swallows all other input; the call is in
		// flight and cannot be cancelled from the keyboard.
		if m.loading {
			return m, nil
		}

		// Any key dismisses the error overlay and returns home.
		if m.errText != "" {
			m.errText = ""
			m.state.Restart()
			return m, func() tea.Msg {
				return router.ResetScreenMsg{Screen: home.New(m.state)}
			}
		}

		// The profile is reachable from anywhere, including mid-quiz; the
		// screen stack preserves whatever was underneath.
		if msg.String() == "ctrl+p" {
			active := m.router.Active()
			_, onProfile := active.(*profilescreen.ProfileScreen)
			if !onProfile && active != nil && active.Title() != "" {
				return m, func() tea.Msg {
					return router.PushScreenMsg{Screen: profilescreen.New(m.state)}
				}
			}
			return m, nil
		}

		if msg.String() == "esc" && m.router.Depth() > 1 {
			// No backing out mid-quiz; an answered question stays answered.
			if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	if m.loading {
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// startRecommendation kicks off the single LLM call for the finished cycle.
func (m *AppModel) startRecommendation() tea.Cmd {
	m.loading = true

	cycle := m.state.Cycle
	svc := m.recommend
	call := func() tea.Msg {
		if svc == nil {
			return recommendDoneMsg{Err: fmt.Errorf("no LLM provider configured")}
		}
		rec, err := svc.Generate(context.Background(), cycle.Answers)
		return recommendDoneMsg{Rec: rec, Err: err}
	}

	return tea.Batch(call, m.spinnerTick())
}

func (m *AppModel) handleRecommendDone(msg recommendDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.Err != nil {
		m.state.FailCompletion(context.Background(), msg.Err)
		m.errText = "เกิดข้อผิดพลาดในการสร้างคำแนะนำ โปรดลองอีกครั้งในภายหลัง"
		return m, nil
	}

	m.state.ApplyCompletion(context.Background(), msg.Rec)
	return m, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(m.state)}
	}
}

func (m *AppModel) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders without chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	p := m.state.Profile
	header := layout.RenderHeader(title, p.Avatar, p.Level, p.Points, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	switch {
	case m.loading:
		content = m.renderLoading(contentHeight)
	case m.errText != "":
		content = m.renderError(contentHeight)
	default:
		content = m.router.View(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m *AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if m.loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if m.errText != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back to home"}}
	}
	var hints []layout.KeyHint
	switch {
	case m.router.Depth() > 1:
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	default:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	if _, onProfile := active.(*profilescreen.ProfileScreen); !onProfile {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Profile"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m *AppModel) renderLoading(height int) string {
	frame := spinnerFrames[m.loadingFrame%len(spinnerFrames)]
	content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(frame) +
		lipgloss.NewStyle().Foreground(theme.Text).Render("  AI กำลังวิเคราะห์ข้อมูลของคุณ...")
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *AppModel) renderError(height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ "+m.errText) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("กดปุ่มใดก็ได้เพื่อกลับสู่หน้าหลัก")
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
