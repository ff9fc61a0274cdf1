package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gmatize/gmatize/internal/quiz"
	"github.com/gmatize/gmatize/internal/quizgen"
	"github.com/gmatize/gmatize/internal/router"
	"github.com/gmatize/gmatize/internal/screen"
)

// stubScreen stands in for a fresh test screen.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "Practice Test" }

// stubReviewer returns a canned review or error.
type stubReviewer struct {
	review *quizgen.Review
	err    error
	calls  int
}

func (r *stubReviewer) Review(context.Context, *quiz.Summary) (*quizgen.Review, error) {
	r.calls++
	return r.review, r.err
}

func sampleSummary() *quiz.Summary {
	return &quiz.Summary{
		Score:    17,
		Answered: 10,
		Correct:  7,
		MinScore: quiz.MinScore,
		MaxScore: quiz.MaxScore,
		Records: []quiz.AnswerRecord{
			{Question: "What is 6 * 7?", Chosen: "B", Correct: "B", Difficulty: quiz.Medium, Points: 2, IsCorrect: true},
			{Question: "What is 2 + 2?", Chosen: "A", Correct: "B", Difficulty: quiz.Hard, Points: 0},
		},
		Missed: []quiz.AnswerRecord{
			{Question: "What is 2 + 2?", Chosen: "A", Correct: "B", Difficulty: quiz.Hard},
		},
	}
}

func TestViewShowsScoreAndChart(t *testing.T) {
	s := New(sampleSummary(), nil, "sess", nil)

	view := s.View(100, 40)
	if !strings.Contains(view, "Your Score: 17") {
		t.Error("expected score line")
	}
	if !strings.Contains(view, "Correct: 7/10") {
		t.Error("expected correct count")
	}
	if !strings.Contains(view, "Minimum") || !strings.Contains(view, "Maximum") {
		t.Error("expected chart reference bars")
	}
}

func TestViewShowsBreakdown(t *testing.T) {
	s := New(sampleSummary(), nil, "sess", nil)

	view := s.View(100, 40)
	if !strings.Contains(view, "answered B, correct B") {
		t.Error("expected correct answer row")
	}
	if !strings.Contains(view, "answered A, correct B") {
		t.Error("expected missed answer row")
	}
}

func TestRestartReplacesWithFreshTest(t *testing.T) {
	called := 0
	restart := func() screen.Screen {
		called++
		return &stubScreen{}
	}
	s := New(sampleSummary(), nil, "sess", restart)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("expected restart command")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if called != 1 {
		t.Errorf("restart factory called %d times, want 1", called)
	}
}

func TestNoReviewerSkipsReview(t *testing.T) {
	s := New(sampleSummary(), nil, "sess", nil)

	if cmd := s.Init(); cmd != nil {
		t.Error("Init should be a no-op without a reviewer")
	}
	if strings.Contains(s.View(100, 40), "Tutor Review") {
		t.Error("review section should be absent")
	}
}

func TestReviewArrives(t *testing.T) {
	rev := &stubReviewer{review: &quizgen.Review{
		Overall: "Good pacing overall.",
		Tips:    []string{"Drill arithmetic basics."},
	}}
	s := New(sampleSummary(), rev, "sess", nil)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should fetch the review")
	}
	if !strings.Contains(s.View(100, 40), "reviewing your attempt") {
		t.Error("expected waiting state before the review arrives")
	}

	updated, _ := s.Update(cmd())
	view := updated.View(100, 40)
	if !strings.Contains(view, "Good pacing overall.") {
		t.Error("expected review text")
	}
	if !strings.Contains(view, "Drill arithmetic basics.") {
		t.Error("expected review tip")
	}
	if rev.calls != 1 {
		t.Errorf("reviewer called %d times, want 1", rev.calls)
	}
}

func TestReviewFailureDegrades(t *testing.T) {
	rev := &stubReviewer{err: errors.New("API error")}
	s := New(sampleSummary(), rev, "sess", nil)

	cmd := s.Init()
	updated, _ := s.Update(cmd())
	view := updated.View(100, 40)
	if !strings.Contains(view, "Tutor review unavailable") {
		t.Error("expected degraded review notice")
	}
}
