package profile

import (
	"github.com/google/uuid"

	"github.com/futurelink/pathfinder/internal/recommend"
)

// CompletionResult describes what a quiz completion changed.
type CompletionResult struct {
	Points     int
	Level      int
	LeveledUp  bool
	BadgeAdded bool
}

// ApplyCompletion folds a successful quiz cycle into the profile: the
// fixed point award, the level derived from the new total, the one-time
// badge, and the insight lists replaced wholesale from the
// recommendations. The input profile is not modified; callers swap in
// the returned copy so a failed cycle leaves no partial state behind.
func ApplyCompletion(p *Profile, rec *recommend.Recommendations) (*Profile, CompletionResult) {
	next := clone(p)

	next.Points = p.Points + QuizAward
	next.Level = LevelForPoints(next.Points)

	res := CompletionResult{
		Points:    next.Points,
		Level:     next.Level,
		LeveledUp: next.Level > p.Level,
	}

	if !next.HasBadge(PathfinderBadgeName) {
		next.Badges = append(next.Badges, Badge{
			ID:   uuid.NewString(),
			Name: PathfinderBadgeName,
			Icon: PathfinderBadgeIcon,
		})
		res.BadgeAdded = true
	}

	next.Aptitudes = append([]string(nil), rec.UserInsights.Aptitudes...)
	next.Interests = append([]string(nil), rec.UserInsights.Interests...)
	next.Likes = append([]string(nil), rec.UserInsights.Likes...)

	return next, res
}
