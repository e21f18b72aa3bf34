package profile

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	prof "github.com/futurelink/pathfinder/internal/profile"
	"github.com/futurelink/pathfinder/internal/screen"
	sess "github.com/futurelink/pathfinder/internal/session"
	"github.com/futurelink/pathfinder/internal/ui/components"
	"github.com/futurelink/pathfinder/internal/ui/layout"
	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// Form field order. Text fields first, then the two pickers, then save.
const (
	fieldFirstName = iota
	fieldLastName
	fieldNickname
	fieldBirthDate
	fieldEducationLevel
	fieldEducationYear
	fieldSave
	fieldCount
)

var educationLevels = []string{"", "มัธยม"}

var educationYears = []string{"", "ม.1", "ม.2", "ม.3", "ม.4", "ม.5", "ม.6"}

// ProfileScreen shows the profile card and an editable identity form.
// Points, level, badges, and insights are read-only here; only a quiz
// completion changes them.
type ProfileScreen struct {
	state *sess.State

	inputs    [4]components.TextInput
	eduLevel  int
	eduYear   int
	focus     int
	savedFlag bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen seeded from the session profile.
func New(state *sess.State) *ProfileScreen {
	p := state.Profile

	s := &ProfileScreen{state: state}
	placeholders := []string{"ชื่อจริง", "นามสกุล", "ชื่อเล่น", "วันเกิด (YYYY-MM-DD)"}
	values := []string{p.FirstName, p.LastName, p.Nickname, p.BirthDate}
	for i := range s.inputs {
		s.inputs[i] = components.NewTextInput(placeholders[i], 60)
		s.inputs[i].Model.SetValue(values[i])
		s.inputs[i].Model.Blur()
	}
	s.eduLevel = indexOf(educationLevels, p.EducationLevel)
	s.eduYear = indexOf(educationYears, p.EducationYear)
	s.setFocus(fieldFirstName)
	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.focus == fieldEducationLevel || s.focus == fieldEducationYear {
		return []layout.KeyHint{
			{Key: "←→", Description: "Change"},
			{Key: "Tab", Description: "Next field"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			s.setFocus((s.focus + 1) % fieldCount)
			return s, nil
		case "shift+tab", "up":
			s.setFocus((s.focus + fieldCount - 1) % fieldCount)
			return s, nil
		case "left":
			if s.focus == fieldEducationLevel || s.focus == fieldEducationYear {
				s.cycle(-1)
				return s, nil
			}
		case "right":
			if s.focus == fieldEducationLevel || s.focus == fieldEducationYear {
				s.cycle(1)
				return s, nil
			}
		case "enter":
			s.save()
			return s, nil
		}
	}

	if s.focus < len(s.inputs) {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		s.savedFlag = false
		return s, cmd
	}

	return s, nil
}

func (s *ProfileScreen) setFocus(field int) {
	s.focus = field
	for i := range s.inputs {
		if i == field {
			s.inputs[i].Model.Focus()
		} else {
			s.inputs[i].Model.Blur()
		}
	}
}

// cycle steps a picker field left or right. Clearing the education level
// also clears the year, which has no meaning without a level.
func (s *ProfileScreen) cycle(dir int) {
	switch s.focus {
	case fieldEducationLevel:
		s.eduLevel = (s.eduLevel + dir + len(educationLevels)) % len(educationLevels)
		if educationLevels[s.eduLevel] == "" {
			s.eduYear = 0
		}
	case fieldEducationYear:
		if educationLevels[s.eduLevel] == "" {
			return
		}
		s.eduYear = (s.eduYear + dir + len(educationYears)) % len(educationYears)
	}
	s.savedFlag = false
}

func (s *ProfileScreen) save() {
	firstName := strings.TrimSpace(s.inputs[fieldFirstName].Value())
	lastName := strings.TrimSpace(s.inputs[fieldLastName].Value())
	nickname := strings.TrimSpace(s.inputs[fieldNickname].Value())
	birthDate := strings.TrimSpace(s.inputs[fieldBirthDate].Value())
	eduLevel := educationLevels[s.eduLevel]
	eduYear := educationYears[s.eduYear]

	s.state.UpdateProfile(prof.Update{
		FirstName:      &firstName,
		LastName:       &lastName,
		Nickname:       &nickname,
		BirthDate:      &birthDate,
		EducationLevel: &eduLevel,
		EducationYear:  &eduYear,
	})
	s.savedFlag = true
}

func (s *ProfileScreen) View(width, height int) string {
	p := s.state.Profile

	var b strings.Builder

	centered := func(rendered string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
		b.WriteString("\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)

	// Card: avatar, name, level progress.
	centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(
		p.Avatar + "  " + p.DisplayName()))

	current, needed := prof.LevelProgress(p.Points)
	bar := components.NewProgressBar(
		fmt.Sprintf("ระดับ %d", p.Level),
		float64(current)/float64(needed),
		false,
		min(width-8, 44),
	)
	centered(bar.View())
	centered(dimStyle.Render(fmt.Sprintf("%d คะแนน · ต้องการอีก %d คะแนนเพื่อเลื่อนระดับ",
		p.Points, needed-current)))
	if age, ok := ageFromBirthDate(p.BirthDate, time.Now()); ok {
		centered(dimStyle.Render(fmt.Sprintf("อายุ %d ปี", age)))
	}
	b.WriteString("\n")

	// Form.
	labels := []string{"ชื่อจริง", "นามสกุล", "ชื่อเล่น", "วันเกิด"}
	for i, in := range s.inputs {
		centered(s.fieldLabel(labels[i], i) + "  " + in.View())
	}
	centered(s.fieldLabel("ระดับการศึกษา", fieldEducationLevel) + "  " +
		textStyle.Render(pickerValue(educationLevels[s.eduLevel], "เลือกระดับการศึกษา")))
	centered(s.fieldLabel("ชั้นปี", fieldEducationYear) + "  " +
		textStyle.Render(pickerValue(educationYears[s.eduYear], "เลือกชั้นปี")))

	saveLabel := "บันทึกข้อมูล"
	if s.savedFlag {
		saveLabel = "บันทึกแล้ว!"
	}
	centered(components.NewButton(saveLabel, s.focus == fieldSave, nil).View())
	b.WriteString("\n")

	// Insights.
	insight := func(label string, values []string) {
		if len(values) == 0 {
			centered(dimStyle.Render(label + ": ทำแบบทดสอบเพื่อดูข้อมูลส่วนนี้"))
			return
		}
		centered(textStyle.Render(label + ": " + strings.Join(values, " · ")))
	}
	insight("ความถนัด", p.Aptitudes)
	insight("ความสนใจ", p.Interests)
	insight("สิ่งที่ชอบ", p.Likes)
	b.WriteString("\n")

	// Badges.
	if len(p.Badges) > 0 {
		parts := make([]string, 0, len(p.Badges))
		for _, badge := range p.Badges {
			parts = append(parts, badge.Icon+" "+badge.Name)
		}
		centered(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(parts, "   ")))
	} else {
		centered(dimStyle.Render("ยังไม่มีเหรียญตรา... เริ่มทำแบบทดสอบเพื่อสะสมเลย!"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.TrimRight(b.String(), "\n"))
}

func (s *ProfileScreen) fieldLabel(label string, field int) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16)
	if s.focus == field {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label)
}

func pickerValue(value, placeholder string) string {
	if value == "" {
		return "‹ " + placeholder + " ›"
	}
	return "‹ " + value + " ›"
}

// ageFromBirthDate computes full years between a YYYY-MM-DD birth date
// and now. Reports false for empty or unparseable dates.
func ageFromBirthDate(birthDate string, now time.Time) (int, bool) {
	t, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, false
	}
	age := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return 0
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
