package quiz

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/catalog"
	qz "github.com/futurelink/pathfinder/internal/quiz"
	"github.com/futurelink/pathfinder/internal/screen"
	sess "github.com/futurelink/pathfinder/internal/session"
	"github.com/futurelink/pathfinder/internal/ui/components"
	"github.com/futurelink/pathfinder/internal/ui/layout"
	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// CompletedMsg is emitted exactly once, when the last question has been
// answered. The app model picks it up and starts the recommendation call.
type CompletedMsg struct {
	Answers catalog.Answers
}

// QuizScreen walks through the question catalog one question at a time.
// There is no back navigation; an answered question stays answered.
type QuizScreen struct {
	state  *sess.State
	engine *qz.Engine
	choice components.ChoiceList
	input  components.TextInput
	done   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the fixed catalog and starts a new cycle.
func New(state *sess.State) *QuizScreen {
	state.StartCycle()
	s := &QuizScreen{
		state:  state,
		engine: qz.New(catalog.Questions()),
		input:  components.NewTextInput("พิมพ์คำตอบของคุณ...", 200),
	}
	s.prepareQuestion()
	return s
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	q := s.engine.Current()
	if q.IsChoice() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "1-4", Description: "Pick"},
			{Key: "Enter", Description: "Confirm"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	q := s.engine.Current()

	if q.IsChoice() {
		var value string
		var confirmed bool
		s.choice, value, confirmed = s.choice.Update(msg)
		if confirmed {
			return s, s.submit(value)
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit feeds the value to the engine and either advances to the next
// question or emits the completed answer set.
func (s *QuizScreen) submit(value string) tea.Cmd {
	answers, done, err := s.engine.Answer(value)
	if err != nil {
		if errors.Is(err, qz.ErrEmptyAnswer) {
			s.input.SetError("กรุณากรอกคำตอบก่อนไปต่อ")
		}
		return nil
	}

	if done {
		s.done = true
		s.state.CompleteQuiz(answers)
		return func() tea.Msg {
			return CompletedMsg{Answers: answers}
		}
	}

	s.prepareQuestion()
	return nil
}

// prepareQuestion rebuilds the answer widget for the current question.
func (s *QuizScreen) prepareQuestion() {
	q := s.engine.Current()
	if q.IsChoice() {
		choices := make([]components.Choice, 0, len(q.Options))
		for _, opt := range q.Options {
			c := components.Choice{Value: opt.Value, Label: opt.Label}
			if opt.Image != "" {
				c.Caption = "🖼  " + opt.Image
			}
			choices = append(choices, c)
		}
		s.choice = components.NewChoiceList(choices, q.Type == catalog.TypeImageChoice)
		return
	}
	s.input.Reset()
}

func (s *QuizScreen) View(width, height int) string {
	q := s.engine.Current()

	var sections []string

	progress := components.NewProgressBar(
		fmt.Sprintf("คำถาม %d/%d", s.engine.Index()+1, s.engine.Total()),
		float64(s.engine.Index())/float64(s.engine.Total()),
		false,
		min(width-8, 48),
	)
	sections = append(sections, progress.View())
	sections = append(sections, "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 64)).
		Render(q.Prompt)
	sections = append(sections, prompt)
	sections = append(sections, "")

	if q.IsChoice() {
		sections = append(sections, s.choice.View(width))
	} else {
		sections = append(sections, s.input.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
