package test

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quiz"
	"github.com/gmatize/gmatize/internal/quizgen"
	"github.com/gmatize/gmatize/internal/router"
	"github.com/gmatize/gmatize/internal/screen"
	"github.com/gmatize/gmatize/internal/screens/summary"
	"github.com/gmatize/gmatize/internal/ui/components"
	"github.com/gmatize/gmatize/internal/ui/layout"

	"github.com/google/uuid"
)

// TestScreen runs one adaptive test attempt: generate, ask, score,
// adjust, until the question count is reached.
type TestScreen struct {
	state      *quiz.State
	generator  quizgen.Generator
	reviewer   quizgen.Reviewer
	sessionID  string
	choices    components.ChoiceList
	spinner    components.Spinner
	generating bool
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)
var _ screen.StatusProvider = (*TestScreen)(nil)

// New creates a TestScreen with fresh state. reviewer may be nil; the
// summary then skips the tutor review.
func New(generator quizgen.Generator, reviewer quizgen.Reviewer) *TestScreen {
	return &TestScreen{
		state:     quiz.NewState(),
		generator: generator,
		reviewer:  reviewer,
		sessionID: uuid.New().String(),
		spinner:   components.NewSpinner("Generating question..."),
	}
}

func (t *TestScreen) Init() tea.Cmd {
	t.state.Started = true
	t.generating = true
	return tea.Batch(t.generateQuestion(), t.spinner.Init())
}

func (t *TestScreen) Title() string {
	return "Practice Test"
}

// HeaderStatus shows progress and the running score in the header.
func (t *TestScreen) HeaderStatus() string {
	return fmt.Sprintf("Q %d/%d   Score %d",
		min(t.state.Index+1, quiz.TotalQuestions), quiz.TotalQuestions, t.state.Score)
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if t.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/A-E", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return t.handleQuestionReady(msg)

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.generating {
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return t, cmd
	}

	return t, nil
}

func (t *TestScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	q := msg.Question
	t.state.Current = &q
	t.generating = false

	choices := make([]components.Choice, 0, len(quiz.OptionLetters))
	for _, letter := range q.Letters() {
		choices = append(choices, components.Choice{
			Letter: letter,
			Text:   q.Options[letter],
		})
	}
	t.choices = components.NewChoiceList(q.Prompt, choices)

	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if t.generating {
		return t, nil
	}

	if msg.String() == "enter" {
		return t.submit()
	}

	var cmd tea.Cmd
	t.choices, cmd = t.choices.Update(msg)
	return t, cmd
}

// submit applies the chosen answer and either fetches the next
// question or hands off to the summary.
func (t *TestScreen) submit() (screen.Screen, tea.Cmd) {
	if t.state.Apply(t.choices.Letter()) == nil {
		return t, nil
	}

	if t.state.Done() {
		sum := quiz.BuildSummary(t.state)
		gen, rev, sid := t.generator, t.reviewer, t.sessionID
		restart := func() screen.Screen { return New(gen, rev) }
		return t, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(sum, rev, sid, restart),
			}
		}
	}

	t.generating = true
	return t, tea.Batch(t.generateQuestion(), t.spinner.Init())
}

// generateQuestion produces the next question asynchronously at the
// current difficulty.
func (t *TestScreen) generateQuestion() tea.Cmd {
	difficulty := t.state.Difficulty
	sessionID := t.sessionID
	return func() tea.Msg {
		ctx := llm.WithSession(context.Background(), sessionID)
		q := t.generator.Generate(ctx, difficulty)
		return questionReadyMsg{Question: q}
	}
}
