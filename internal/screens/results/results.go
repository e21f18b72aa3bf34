package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/catalog"
	"github.com/futurelink/pathfinder/internal/profile"
	"github.com/futurelink/pathfinder/internal/recommend"
	"github.com/futurelink/pathfinder/internal/router"
	"github.com/futurelink/pathfinder/internal/screen"
	profilescreen "github.com/futurelink/pathfinder/internal/screens/profile"
	sess "github.com/futurelink/pathfinder/internal/session"
	"github.com/futurelink/pathfinder/internal/ui/layout"
	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// RestartMsg asks the app to discard the finished cycle and start a new
// quiz from the first question.
type RestartMsg struct{}

// ResultsScreen shows the recommendation report for the finished cycle.
type ResultsScreen struct {
	state        *sess.State
	rec          *recommend.Recommendations
	answers      catalog.Answers
	award        *profile.CompletionResult
	scrollOffset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the session's current cycle.
func New(state *sess.State) *ResultsScreen {
	s := &ResultsScreen{state: state, award: state.LastResult}
	if state.Cycle != nil {
		s.rec = state.Cycle.Recommendations
		s.answers = state.Cycle.Answers
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retake quiz"},
		{Key: "P", Description: "Profile"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		s.scrollOffset++
	case "r":
		return s, func() tea.Msg { return RestartMsg{} }
	case "p":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: profilescreen.New(s.state)}
		}
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.rec == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("ยังไม่มีผลการวิเคราะห์"))
	}

	lines := s.renderLines(width)

	// Clamp the scroll window to the rendered content.
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}

	end := s.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[s.scrollOffset:end], "\n")
}

func (s *ResultsScreen) renderLines(width int) []string {
	var b strings.Builder

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 70))

	centered(titleStyle, "🎉 ผลการวิเคราะห์เส้นทางอาชีพของคุณ")
	b.WriteString("\n")

	// Award banner.
	if s.award != nil {
		award := fmt.Sprintf("+%d คะแนน   เลเวล %d", profile.QuizAward, s.award.Level)
		if s.award.BadgeAdded {
			award += fmt.Sprintf("   %s ได้รับเหรียญ \"%s\"", profile.PathfinderBadgeIcon, profile.PathfinderBadgeName)
		}
		centered(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), award)
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	section := func(label string) {
		centered(dimStyle, label)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
	}

	// Summary.
	section("บทสรุป")
	centered(bodyStyle, s.rec.Summary)
	b.WriteString("\n")

	// Careers.
	if len(s.rec.CareerSuggestions) > 0 {
		section("อาชีพที่แนะนำ")
		for _, c := range s.rec.CareerSuggestions {
			centered(textStyle.Bold(true), "💼 "+c.Name)
			centered(bodyStyle, c.Description)
			if len(c.RequiredSkills) > 0 {
				centered(dimStyle, "ทักษะ: "+strings.Join(c.RequiredSkills, " · "))
			}
			b.WriteString("\n")
		}
	}

	// Education paths.
	if len(s.rec.EducationSuggestions) > 0 {
		section("เส้นทางการศึกษา")
		for _, e := range s.rec.EducationSuggestions {
			centered(textStyle.Bold(true), "🎓 "+e.Major)
			centered(bodyStyle, e.Description)
			if len(e.RelatedCareers) > 0 {
				centered(dimStyle, "อาชีพที่เกี่ยวข้อง: "+strings.Join(e.RelatedCareers, " · "))
			}
			b.WriteString("\n")
		}
	}

	// Activities.
	if len(s.rec.ActivitySuggestions) > 0 {
		section("กิจกรรมที่ควรลอง")
		for _, a := range s.rec.ActivitySuggestions {
			centered(textStyle.Bold(true), fmt.Sprintf("⭐ %s (%s)", a.Name, a.Type))
			centered(bodyStyle, a.Description)
			b.WriteString("\n")
		}
	}

	// Insights.
	section("สิ่งที่เราเรียนรู้เกี่ยวกับคุณ")
	insight := func(label string, values []string) {
		if len(values) == 0 {
			return
		}
		centered(textStyle, label+": "+strings.Join(values, " · "))
	}
	insight("ความถนัด", s.rec.UserInsights.Aptitudes)
	insight("ความสนใจ", s.rec.UserInsights.Interests)
	insight("สิ่งที่ชอบ", s.rec.UserInsights.Likes)
	b.WriteString("\n")

	// Answer recap.
	section("คำตอบของคุณ")
	for _, q := range catalog.Questions() {
		v, err := s.answers.Get(q.Key)
		if err != nil || v == "" {
			continue
		}
		centered(dimStyle, q.Prompt)
		centered(textStyle, "→ "+v)
		b.WriteString("\n")
	}

	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
