package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/quiz"
	"github.com/gmatize/gmatize/internal/router"
	"github.com/gmatize/gmatize/internal/screen"
	"github.com/gmatize/gmatize/internal/ui/components"
	"github.com/gmatize/gmatize/internal/ui/layout"
	"github.com/gmatize/gmatize/internal/ui/theme"
)

// WelcomeScreen is the entry screen: banner, a short pitch, and the
// menu that starts a test.
type WelcomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. testFactory produces a fresh test
// screen each time; it is invoked on every start so restarts never
// share state.
func New(testFactory func() screen.Screen) *WelcomeScreen {
	items := []components.MenuItem{
		{Label: "START TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: testFactory()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &WelcomeScreen{
		menu: components.NewMenu(items),
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("GMAT quantitative practice that adapts to you")
	sections = append(sections, tagline)

	rules := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(renderRules())
	sections = append(sections, "", rules, "")

	sections = append(sections, w.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderRules() string {
	return strings.Join([]string{
		fmt.Sprintf("%d questions, 5 choices each.", quiz.TotalQuestions),
		"Correct answers raise the difficulty, misses lower it.",
		fmt.Sprintf("Easy questions score %d point, medium %d, hard %d.",
			quiz.Easy.Points(), quiz.Medium.Points(), quiz.Hard.Points()),
	}, "\n")
}
