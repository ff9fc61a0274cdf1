package test

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/quiz"
	"github.com/gmatize/gmatize/internal/ui/components"
	"github.com/gmatize/gmatize/internal/ui/theme"
)

func (t *TestScreen) View(width, height int) string {
	if t.generating || t.state.Current == nil {
		return t.renderWaiting(width, height)
	}

	var b strings.Builder

	progress := components.NewProgressBar("",
		float64(t.state.Index)/float64(quiz.TotalQuestions), false, contentWidth(width)-4)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	difficulty := lipgloss.NewStyle().
		Foreground(difficultyColor(t.state.Difficulty)).
		Bold(true).
		Render(fmt.Sprintf("[%s]", t.state.Difficulty))
	number := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d  ", t.state.Index+1, quiz.TotalQuestions))
	b.WriteString(number + difficulty)
	b.WriteString("\n\n")

	b.WriteString(t.choices.View())

	card := theme.Card.Width(contentWidth(width)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (t *TestScreen) renderWaiting(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		t.spinner.View())
}

func difficultyColor(d quiz.Difficulty) color.Color {
	switch d {
	case quiz.Easy:
		return theme.Success
	case quiz.Hard:
		return theme.Error
	default:
		return theme.Accent
	}
}

func contentWidth(frameWidth int) int {
	w := frameWidth - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}
