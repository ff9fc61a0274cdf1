package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Gmatize styling for wait states.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with the given wait label.
func NewSpinner(label string) Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return Spinner{Model: m, Label: label}
}

// Init starts the spinner animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner and its label.
func (s Spinner) View() string {
	return s.Model.View() + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
}
