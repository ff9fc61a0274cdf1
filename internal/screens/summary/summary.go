package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quiz"
	"github.com/gmatize/gmatize/internal/quizgen"
	"github.com/gmatize/gmatize/internal/router"
	"github.com/gmatize/gmatize/internal/screen"
	"github.com/gmatize/gmatize/internal/ui/components"
	"github.com/gmatize/gmatize/internal/ui/layout"
	"github.com/gmatize/gmatize/internal/ui/theme"
)

// reviewReadyMsg is sent when the tutor review arrives (or fails).
type reviewReadyMsg struct {
	Review *quizgen.Review
	Err    error
}

// SummaryScreen shows the final score, the per-question breakdown, the
// score chart, and the tutor's review of the attempt.
type SummaryScreen struct {
	summary      *quiz.Summary
	reviewer     quizgen.Reviewer
	sessionID    string
	restart      func() screen.Screen
	review       *quizgen.Review
	reviewFailed bool
	reviewWait   bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. reviewer may be nil to skip the review;
// restart produces a fresh test screen.
func New(summary *quiz.Summary, reviewer quizgen.Reviewer, sessionID string, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{
		summary:   summary,
		reviewer:  reviewer,
		sessionID: sessionID,
		restart:   restart,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.reviewer == nil {
		return nil
	}
	s.reviewWait = true
	return s.fetchReview()
}

func (s *SummaryScreen) Title() string {
	return "Test Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Restart test"},
		{Key: "Esc", Description: "Menu"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewReadyMsg:
		s.reviewWait = false
		if msg.Err != nil {
			s.reviewFailed = true
			return s, nil
		}
		s.review = msg.Review
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "enter":
			if s.restart == nil {
				return s, nil
			}
			fresh := s.restart()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: fresh}
			}
		}
	}

	return s, nil
}

// fetchReview asks the tutor for an assessment asynchronously.
func (s *SummaryScreen) fetchReview() tea.Cmd {
	reviewer := s.reviewer
	summary := s.summary
	sessionID := s.sessionID
	return func() tea.Msg {
		ctx := llm.WithSession(context.Background(), sessionID)
		review, err := reviewer.Review(ctx, summary)
		return reviewReadyMsg{Review: review, Err: err}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Your Score: %d        Correct: %d/%d",
		sum.Score, sum.Correct, sum.Answered)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(scoreLine))
	b.WriteString("\n\n")

	chartWidth := min(width-8, 60)
	chart := components.NewBarChart([]components.Bar{
		{Label: "Your Score", Value: sum.Score, Color: theme.Primary},
		{Label: "Minimum", Value: sum.MinScore, Color: theme.Border},
		{Label: "Maximum", Value: sum.MaxScore, Color: theme.Secondary},
	}, sum.MaxScore, chartWidth)
	b.WriteString(centerBlock(chart.View(), width))
	b.WriteString("\n\n")

	b.WriteString(s.renderBreakdown(width))

	if block := s.renderReview(width); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
	}

	return b.String()
}

// renderBreakdown lists every answered question with its outcome.
func (s *SummaryScreen) renderBreakdown(width int) string {
	var b strings.Builder

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Responses")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, rec := range s.summary.Records {
		mark := "✗"
		style := lipgloss.NewStyle().Foreground(theme.Error)
		if rec.IsCorrect {
			mark = "✓"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}

		line := fmt.Sprintf("  %s Q%-2d [%-6s] answered %s, correct %s   +%d",
			mark, i+1, rec.Difficulty, rec.Chosen, rec.Correct, rec.Points)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderReview shows the tutor's assessment once it arrives.
func (s *SummaryScreen) renderReview(width int) string {
	var body string
	switch {
	case s.reviewWait:
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("The tutor is reviewing your attempt...")
	case s.reviewFailed:
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Tutor review unavailable.")
	case s.review != nil:
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.review.Overall))
		for _, tip := range s.review.Tips {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("• " + tip))
		}
		body = b.String()
	default:
		return ""
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Tutor Review")) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"

	return header + centerBlock(body, width)
}

// centerBlock centers a multi-line block horizontally as a unit.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
