package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futurelink/pathfinder/internal/router"
	"github.com/futurelink/pathfinder/internal/screen"
	"github.com/futurelink/pathfinder/internal/ui/theme"
)

// Splash phases: the compass appears first, then starts sparkling, then
// the banner and tagline fade in and a key press moves on.
const (
	tickInterval = 100 * time.Millisecond

	phaseSparkle = 500 * time.Millisecond
	phaseBanner  = 1500 * time.Millisecond
)

const mascotArt = `    ╭─────────╮
   ╱    ▲ N    ╲
  │   ╲  │  ╱   │
  │    ╲ │ ╱    │
  │ W ───◉─── E │
  │    ╱ │ ╲    │
  │   ╱  │  ╲   │
   ╲    S ▼    ╱
    ╰─────────╯`

var sparkleFrames = []string{"★", "✦"}

// sparkle positions as mascot line indexes
var sparkleLines = []int{0, 4, 7}

type tickMsg time.Time

// WelcomeScreen is the splash shown once at startup, before the home
// screen and its chrome take over.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen produced by
// homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

// Title is empty so the app renders the splash without header or footer.
func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.tick()
}

func (w *WelcomeScreen) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		return w, w.tick()

	case tea.KeyPressMsg:
		// Keys count once the continue hint is on screen.
		if w.elapsed >= phaseBanner {
			return w, w.handOff()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) handOff() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true

	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed >= phaseSparkle {
		mascot = w.addSparkles(mascot)
	}

	sections := []string{mascot}
	if w.elapsed >= phaseBanner {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("ค้นหาเส้นทางอาชีพในฝันของคุณ")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")

		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// addSparkles decorates fixed mascot lines with alternating sparkle
// characters, swapping colors every tick.
func (w *WelcomeScreen) addSparkles(mascot string) string {
	frame := sparkleFrames[w.tickCount%len(sparkleFrames)]
	left := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)

	lines := strings.Split(mascot, "\n")
	for i, idx := range sparkleLines {
		if idx >= len(lines) {
			continue
		}
		if i%2 == 0 {
			lines[idx] = left + "  " + lines[idx] + "  " + right
		} else {
			lines[idx] = right + "  " + lines[idx] + "  " + left
		}
	}
	return strings.Join(lines, "\n")
}
