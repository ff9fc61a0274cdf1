package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quiz"
)

func missedSummary() *quiz.Summary {
	return &quiz.Summary{
		Score:    14,
		Answered: 10,
		Correct:  6,
		MinScore: quiz.MinScore,
		MaxScore: quiz.MaxScore,
		Missed: []quiz.AnswerRecord{
			{
				Question:   "If x + 3 = 11, what is the value of x?",
				Chosen:     "A",
				Correct:    "C",
				Difficulty: quiz.Medium,
			},
		},
	}
}

func TestReview_ParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"overall":"A solid attempt.","tips":["Review linear equations."]}`),
	})
	rev := NewReviewer(mock)

	review, err := rev.Review(context.Background(), missedSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Overall != "A solid attempt." {
		t.Errorf("Overall = %q", review.Overall)
	}
	if len(review.Tips) != 1 || review.Tips[0] != "Review linear equations." {
		t.Errorf("unexpected tips: %v", review.Tips)
	}
}

func TestReview_MissedQuestionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"overall":"ok","tips":[]}`),
	})
	rev := NewReviewer(mock)

	if _, err := rev.Review(context.Background(), missedSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "If x + 3 = 11") {
		t.Errorf("expected missed question in prompt, got %q", userMsg)
	}
	if !strings.Contains(userMsg, "Score: 14 out of 30") {
		t.Errorf("expected score line in prompt, got %q", userMsg)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "test-review" {
		t.Error("review should request structured output with the test-review schema")
	}
}

func TestReview_PerfectRun(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"overall":"Perfect score.","tips":["Try timed sets next."]}`),
	})
	rev := NewReviewer(mock)

	sum := missedSummary()
	sum.Missed = nil
	sum.Correct = 10
	sum.Score = 29

	if _, err := rev.Review(context.Background(), sum); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "No questions were missed") {
		t.Error("expected the prompt to note a clean run")
	}
}

func TestReview_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	rev := NewReviewer(mock)

	_, err := rev.Review(context.Background(), missedSummary())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "review generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestReview_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	rev := NewReviewer(mock)

	_, err := rev.Review(context.Background(), missedSummary())
	if err == nil {
		t.Fatal("expected parse error")
	}
}
