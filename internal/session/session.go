package session

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/futurelink/pathfinder/internal/catalog"
	"github.com/futurelink/pathfinder/internal/profile"
	"github.com/futurelink/pathfinder/internal/recommend"
	"github.com/futurelink/pathfinder/internal/store"
)

// Cycle holds the state of one quiz attempt, from the first question to
// either a results view or a failed recommendation call. A restart throws
// the whole cycle away.
type Cycle struct {
	ID              string
	Answers         catalog.Answers
	Recommendations *recommend.Recommendations
	Err             error
}

// State is the runtime state shared across screens. The profile survives
// restarts; the cycle does not.
type State struct {
	Profile   *profile.Profile
	Cycle     *Cycle
	EventRepo store.EventRepo

	// LastResult describes the most recent successful completion, for
	// the results screen's award banner.
	LastResult *profile.CompletionResult
}

// NewState creates session state with a default profile.
func NewState(eventRepo store.EventRepo) *State {
	return &State{
		Profile:   profile.NewProfile(),
		EventRepo: eventRepo,
	}
}

// StartCycle begins a fresh quiz attempt and returns it.
func (s *State) StartCycle() *Cycle {
	s.Cycle = &Cycle{ID: uuid.NewString()}
	s.LastResult = nil
	return s.Cycle
}

// CompleteQuiz records the finished answer set on the current cycle.
// Starts a cycle implicitly if the quiz screen was reached without one.
func (s *State) CompleteQuiz(answers catalog.Answers) *Cycle {
	if s.Cycle == nil {
		s.StartCycle()
	}
	s.Cycle.Answers = answers
	return s.Cycle
}

// ApplyCompletion commits a successful recommendation result: the profile
// is replaced with the awarded copy and the completion and award events
// are persisted. The swap happens only after the new profile is fully
// built, so an error path never leaves a half-updated profile.
func (s *State) ApplyCompletion(ctx context.Context, rec *recommend.Recommendations) *profile.CompletionResult {
	next, res := profile.ApplyCompletion(s.Profile, rec)
	s.Profile = next
	s.LastResult = &res

	if s.Cycle != nil {
		s.Cycle.Recommendations = rec
		s.Cycle.Err = nil
		s.persistCompletion(ctx, res)
	}
	return &res
}

// FailCompletion records a failed recommendation call on the cycle. The
// profile is untouched; no points, badges, or insights change.
func (s *State) FailCompletion(ctx context.Context, err error) {
	if s.Cycle == nil {
		return
	}
	s.Cycle.Err = err
	if s.EventRepo != nil {
		_ = s.EventRepo.AppendCompletion(ctx, store.CompletionEventData{
			CycleID: s.Cycle.ID,
			Answers: encodeAnswers(s.Cycle.Answers),
			Success: false,
		})
	}
}

// Restart discards the current cycle so a new quiz starts clean. The
// profile and everything earned on it persist.
func (s *State) Restart() {
	s.Cycle = nil
	s.LastResult = nil
}

// UpdateProfile applies form edits from the profile screen.
func (s *State) UpdateProfile(u profile.Update) {
	s.Profile = u.Apply(s.Profile)
}

// CompletedQuizzes returns how many quizzes finished successfully, for
// the home screen stats bar.
func (s *State) CompletedQuizzes(ctx context.Context) int {
	if s.EventRepo == nil {
		return 0
	}
	n, err := s.EventRepo.CompletionCount(ctx)
	if err != nil {
		return 0
	}
	return n
}

func (s *State) persistCompletion(ctx context.Context, res profile.CompletionResult) {
	if s.EventRepo == nil {
		return
	}
	badge := ""
	if res.BadgeAdded {
		badge = profile.PathfinderBadgeName
	}
	_ = s.EventRepo.AppendCompletion(ctx, store.CompletionEventData{
		CycleID: s.Cycle.ID,
		Answers: encodeAnswers(s.Cycle.Answers),
		Success: true,
	})
	_ = s.EventRepo.AppendAward(ctx, store.AwardEventData{
		CycleID:    s.Cycle.ID,
		Points:     profile.QuizAward,
		Level:      res.Level,
		BadgeAdded: badge,
	})
}

func encodeAnswers(a catalog.Answers) string {
	b, err := json.Marshal(a)
	if err != nil {
		return ""
	}
	return string(b)
}
