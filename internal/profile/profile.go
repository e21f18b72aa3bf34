package profile

// Progression constants. A finished quiz is worth a fixed award and
// levels are derived from lifetime points, never stored independently.
const (
	QuizAward      = 100
	PointsPerLevel = 150
)

// PathfinderBadge is granted on the first completed quiz. Repeat
// completions never duplicate it.
const (
	PathfinderBadgeName = "นักค้นหาเส้นทาง"
	PathfinderBadgeIcon = "🧭"
)

// Badge is a named achievement marker. Name is the identity used for
// deduplication; ID only distinguishes grant events.
type Badge struct {
	ID   string
	Name string
	Icon string
}

// Profile is the persistent user record. Identity fields are edited on
// the profile screen; Points, Level, Badges, and the insight lists are
// only changed by completing a quiz.
type Profile struct {
	Name           string
	FirstName      string
	LastName       string
	Nickname       string
	Avatar         string
	BirthDate      string
	EducationLevel string
	EducationYear  string

	Points int
	Level  int
	Badges []Badge

	Aptitudes []string
	Interests []string
	Likes     []string
}

// NewProfile returns the default profile a fresh session starts with.
func NewProfile() *Profile {
	return &Profile{
		Name:   "นักสำรวจอนาคต",
		Avatar: "👩‍🚀",
		Level:  1,
	}
}

// DisplayName prefers the nickname, then first name, then the default name.
func (p *Profile) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	if p.FirstName != "" {
		return p.FirstName
	}
	return p.Name
}

// HasBadge reports whether a badge with the given name is already held.
func (p *Profile) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// LevelForPoints maps lifetime points to a level. Level 1 starts at zero
// points and each level spans PointsPerLevel points.
func LevelForPoints(points int) int {
	return points/PointsPerLevel + 1
}

// LevelProgress returns points earned within the current level and the
// points needed to finish it. The fraction of the two drives the profile
// screen's progress bar.
func LevelProgress(points int) (current, needed int) {
	return points % PointsPerLevel, PointsPerLevel
}

// Update carries edits from the profile form. Nil fields are left
// untouched so a partial save never clears unrelated values.
type Update struct {
	FirstName      *string
	LastName       *string
	Nickname       *string
	Avatar         *string
	BirthDate      *string
	EducationLevel *string
	EducationYear  *string
}

// Apply merges the update into a copy of the profile and returns it.
// Progression fields are never touched by form edits.
func (u Update) Apply(p *Profile) *Profile {
	next := clone(p)
	if u.FirstName != nil {
		next.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		next.LastName = *u.LastName
	}
	if u.Nickname != nil {
		next.Nickname = *u.Nickname
	}
	if u.Avatar != nil {
		next.Avatar = *u.Avatar
	}
	if u.BirthDate != nil {
		next.BirthDate = *u.BirthDate
	}
	if u.EducationLevel != nil {
		next.EducationLevel = *u.EducationLevel
	}
	if u.EducationYear != nil {
		next.EducationYear = *u.EducationYear
	}
	return next
}

func clone(p *Profile) *Profile {
	next := *p
	next.Badges = append([]Badge(nil), p.Badges...)
	next.Aptitudes = append([]string(nil), p.Aptitudes...)
	next.Interests = append([]string(nil), p.Interests...)
	next.Likes = append([]string(nil), p.Likes...)
	return &next
}
