package profile

import (
	"testing"

	"github.com/futurelink/pathfinder/internal/recommend"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 1},
		{149, 1},
		{150, 2},
		{299, 2},
		{300, 3},
		{450, 4},
	}

	for _, tt := range tests {
		got := LevelForPoints(tt.points)
		if got != tt.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestApplyCompletion_AwardsFixedPoints(t *testing.T) {
	p := NewProfile()
	rec := &recommend.Recommendations{Summary: "s"}

	next, res := ApplyCompletion(p, rec)

	if next.Points != QuizAward {
		t.Errorf("Points = %d, want %d", next.Points, QuizAward)
	}
	if next.Level != 1 {
		t.Errorf("Level = %d, want 1", next.Level)
	}
	if res.LeveledUp {
		t.Error("LeveledUp = true on first completion")
	}

	// Second completion crosses the level threshold at 150 points.
	next2, res2 := ApplyCompletion(next, rec)
	if next2.Points != 2*QuizAward {
		t.Errorf("Points = %d, want %d", next2.Points, 2*QuizAward)
	}
	if next2.Level != 2 {
		t.Errorf("Level = %d, want 2", next2.Level)
	}
	if !res2.LeveledUp {
		t.Error("LeveledUp = false when crossing threshold")
	}
}

func TestApplyCompletion_BadgeIsIdempotent(t *testing.T) {
	p := NewProfile()
	rec := &recommend.Recommendations{Summary: "s"}

	next, res := ApplyCompletion(p, rec)
	if !res.BadgeAdded {
		t.Error("BadgeAdded = false on first completion")
	}
	if len(next.Badges) != 1 {
		t.Fatalf("badges = %d, want 1", len(next.Badges))
	}
	if next.Badges[0].Name != PathfinderBadgeName {
		t.Errorf("badge name = %q", next.Badges[0].Name)
	}

	for i := 0; i < 3; i++ {
		var res2 CompletionResult
		next, res2 = ApplyCompletion(next, rec)
		if res2.BadgeAdded {
			t.Errorf("BadgeAdded = true on completion %d", i+2)
		}
	}
	if len(next.Badges) != 1 {
		t.Errorf("badges = %d after repeat completions, want 1", len(next.Badges))
	}
}

func TestApplyCompletion_OverwritesInsights(t *testing.T) {
	p := NewProfile()
	p.Aptitudes = []string{"A"}
	p.Interests = []string{"B"}
	p.Likes = []string{"C"}

	rec := &recommend.Recommendations{
		Summary: "s",
		UserInsights: recommend.UserInsights{
			Aptitudes: []string{"ตรรกะ", "วิเคราะห์"},
			Interests: []string{"เทคโนโลยี"},
		},
	}

	next, _ := ApplyCompletion(p, rec)

	if len(next.Aptitudes) != 2 || next.Aptitudes[0] != "ตรรกะ" {
		t.Errorf("Aptitudes = %v, want replaced wholesale", next.Aptitudes)
	}
	if len(next.Interests) != 1 || next.Interests[0] != "เทคโนโลยี" {
		t.Errorf("Interests = %v, want replaced wholesale", next.Interests)
	}
	if len(next.Likes) != 0 {
		t.Errorf("Likes = %v, want emptied when the new set is empty", next.Likes)
	}
}

func TestApplyCompletion_DoesNotMutateInput(t *testing.T) {
	p := NewProfile()
	p.Aptitudes = []string{"old"}
	rec := &recommend.Recommendations{
		Summary:      "s",
		UserInsights: recommend.UserInsights{Aptitudes: []string{"new"}},
	}

	_, _ = ApplyCompletion(p, rec)

	if p.Points != 0 {
		t.Errorf("input profile points mutated: %d", p.Points)
	}
	if len(p.Badges) != 0 {
		t.Errorf("input profile badges mutated: %v", p.Badges)
	}
	if p.Aptitudes[0] != "old" {
		t.Errorf("input profile insights mutated: %v", p.Aptitudes)
	}
}

func TestUpdate_AppliesOnlySetFields(t *testing.T) {
	p := NewProfile()
	p.FirstName = "สมชาย"
	p.Nickname = "ชาย"
	p.Points = 250
	p.Level = 2

	nick := "บอย"
	next := Update{Nickname: &nick}.Apply(p)

	if next.Nickname != "บอย" {
		t.Errorf("Nickname = %q, want updated", next.Nickname)
	}
	if next.FirstName != "สมชาย" {
		t.Errorf("FirstName = %q, want untouched", next.FirstName)
	}
	if next.Points != 250 || next.Level != 2 {
		t.Errorf("progression changed by form edit: %d pts, level %d", next.Points, next.Level)
	}
	if p.Nickname != "ชาย" {
		t.Errorf("input profile mutated: %q", p.Nickname)
	}
}

func TestDisplayName(t *testing.T) {
	p := NewProfile()
	if p.DisplayName() != "นักสำรวจอนาคต" {
		t.Errorf("default DisplayName = %q", p.DisplayName())
	}

	p.FirstName = "สมชาย"
	if p.DisplayName() != "สมชาย" {
		t.Errorf("DisplayName = %q, want first name", p.DisplayName())
	}

	p.Nickname = "ชาย"
	if p.DisplayName() != "ชาย" {
		t.Errorf("DisplayName = %q, want nickname", p.DisplayName())
	}
}

func TestLevelProgress(t *testing.T) {
	current, needed := LevelProgress(250)
	if current != 100 || needed != PointsPerLevel {
		t.Errorf("LevelProgress(250) = (%d, %d), want (100, %d)", current, needed, PointsPerLevel)
	}
}
