package app

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/futurelink/pathfinder/internal/catalog"
	"github.com/futurelink/pathfinder/internal/llm"
	"github.com/futurelink/pathfinder/internal/profile"
	"github.com/futurelink/pathfinder/internal/recommend"
	"github.com/futurelink/pathfinder/internal/router"
	"github.com/futurelink/pathfinder/internal/screens/home"
	profilescreen "github.com/futurelink/pathfinder/internal/screens/profile"
	quizscreen "github.com/futurelink/pathfinder/internal/screens/quiz"
	"github.com/futurelink/pathfinder/internal/screens/results"
	"github.com/futurelink/pathfinder/internal/store"
)

func newTestApp(t *testing.T, responses ...llm.MockResponse) (*AppModel, *llm.MockProvider) {
	t.Helper()
	s, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(responses...)
	m := newAppModel(Options{
		EventRepo: s.EventRepo(),
		Recommend: recommend.NewService(mock, recommend.DefaultConfig()),
	})
	return m, mock
}

// onQuiz walks the model off the splash onto home and pushes the quiz
// screen, the state every completion test starts from.
func onQuiz(t *testing.T, m *AppModel) {
	t.Helper()
	m.Update(router.ResetScreenMsg{Screen: home.New(m.state)})
	m.Update(router.PushScreenMsg{Screen: quizscreen.New(m.state)})
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Fatalf("active = %T, want *quizscreen.QuizScreen", m.router.Active())
	}
}

// drive delivers a message and chases the commands it produces until the
// model settles. Batches are unrolled; a spinner tick is delivered once
// but its re-arm command is dropped, since the tick would otherwise
// chain forever. Commands returned by screen transitions (Init) are
// likewise dropped so cursor blinks do not loop.
func drive(t *testing.T, m *AppModel, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	runCmd(t, m, cmd)
}

func runCmd(t *testing.T, m *AppModel, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			runCmd(t, m, c)
		}
	case recommendDoneMsg:
		_, next := m.Update(msg)
		runCmd(t, m, next)
	default:
		m.Update(msg)
	}
}

func completedAnswers() catalog.Answers {
	return catalog.Answers{
		Activity:  "เทคโนโลยี",
		Subject:   "วิทยาศาสตร์และคณิตศาสตร์",
		WorkStyle: "ทำงานเป็นทีมและแลกเปลี่ยนความคิดเห็น",
		Passion:   "อยากช่วยลดโลกร้อน",
	}
}

func recommendationPayload() json.RawMessage {
	return json.RawMessage(`{
		"summary": "คุณเหมาะกับสายงานเทคโนโลยีเพื่อสิ่งแวดล้อม",
		"careerSuggestions": [
			{"name": "วิศวกรสิ่งแวดล้อม", "description": "ออกแบบระบบลดมลพิษ", "requiredSkills": ["ฟิสิกส์"]}
		],
		"educationSuggestions": [],
		"activitySuggestions": [],
		"userInsights": {"aptitudes": ["การวิเคราะห์"], "interests": ["เทคโนโลยี"], "likes": []}
	}`)
}

func TestAppModel_CompletionReachesResults(t *testing.T) {
	m, mock := newTestApp(t, llm.MockResponse{Content: recommendationPayload()})
	onQuiz(t, m)

	answers := completedAnswers()
	m.state.CompleteQuiz(answers)

	// The completion message must raise the loading overlay before any
	// command runs.
	_, cmd := m.Update(quizscreen.CompletedMsg{Answers: answers})
	if !m.loading {
		t.Fatal("loading overlay not raised on quiz completion")
	}
	runCmd(t, m, cmd)

	if m.loading {
		t.Error("loading overlay still up after the call finished")
	}
	if m.errText != "" {
		t.Errorf("errText = %q, want empty", m.errText)
	}
	if _, ok := m.router.Active().(*results.ResultsScreen); !ok {
		t.Errorf("active = %T, want *results.ResultsScreen", m.router.Active())
	}
	if got := m.state.Profile.Points; got != profile.QuizAward {
		t.Errorf("points = %d, want %d", got, profile.QuizAward)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestAppModel_FailureShowsErrorThenHome(t *testing.T) {
	m, _ := newTestApp(t, llm.MockResponse{Err: &llm.ErrRateLimit{}})
	onQuiz(t, m)

	answers := completedAnswers()
	m.state.CompleteQuiz(answers)
	drive(t, m, quizscreen.CompletedMsg{Answers: answers})

	if m.loading {
		t.Error("loading overlay still up after the call failed")
	}
	if m.errText == "" {
		t.Fatal("error overlay not raised on a failed call")
	}
	if got := m.state.Profile.Points; got != 0 {
		t.Errorf("points = %d, want 0 on failure", got)
	}
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Errorf("active = %T, want the quiz to stay underneath the overlay", m.router.Active())
	}

	// Any key dismisses the overlay, discards the cycle, and resets to home.
	drive(t, m, tea.KeyPressMsg{Code: 'x', Text: "x"})

	if m.errText != "" {
		t.Errorf("errText = %q after dismissal, want empty", m.errText)
	}
	if m.state.Cycle != nil {
		t.Error("cycle not discarded after dismissal")
	}
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want *home.HomeScreen", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestAppModel_RestartResetsToHome(t *testing.T) {
	m, _ := newTestApp(t, llm.MockResponse{Content: recommendationPayload()})
	onQuiz(t, m)

	answers := completedAnswers()
	m.state.CompleteQuiz(answers)
	drive(t, m, quizscreen.CompletedMsg{Answers: answers})

	drive(t, m, results.RestartMsg{})

	if m.state.Cycle != nil {
		t.Error("cycle survived the restart")
	}
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want *home.HomeScreen", m.router.Active())
	}
	// The profile keeps what the finished cycle earned.
	if got := m.state.Profile.Points; got != profile.QuizAward {
		t.Errorf("points = %d, want %d after restart", got, profile.QuizAward)
	}
}

func TestAppModel_CtrlPOpensProfileMidQuiz(t *testing.T) {
	m, _ := newTestApp(t)
	onQuiz(t, m)

	drive(t, m, tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})

	if _, ok := m.router.Active().(*profilescreen.ProfileScreen); !ok {
		t.Fatalf("active = %T, want *profilescreen.ProfileScreen", m.router.Active())
	}
	if m.router.Depth() != 3 {
		t.Errorf("depth = %d, want 3", m.router.Depth())
	}

	// A second ctrl+p on the profile screen is a no-op.
	drive(t, m, tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if m.router.Depth() != 3 {
		t.Errorf("depth = %d after second ctrl+p, want 3", m.router.Depth())
	}

	// Back pops to whichever screen opened the profile, here the quiz.
	drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Errorf("active = %T after esc, want *quizscreen.QuizScreen", m.router.Active())
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d after esc, want 2", m.router.Depth())
	}
}

func TestAppModel_CtrlPIgnoredOnSplash(t *testing.T) {
	m, _ := newTestApp(t)

	drive(t, m, tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})

	if _, ok := m.router.Active().(*profilescreen.ProfileScreen); ok {
		t.Error("profile opened over the splash")
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
