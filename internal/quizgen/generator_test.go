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

const wellFormedText = `Question: A train travels 180 miles in 3 hours. At the same rate, how many miles does it travel in 4 hours?
A) 200
B) 220
C) 240
D) 260
E) 280
Correct Answer: C`

func TestGenerate_WellFormedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedText),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), quiz.Medium)
	if !strings.HasPrefix(q.Prompt, "A train travels") {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
	if q.Correct != "C" {
		t.Errorf("Correct = %q, want C", q.Correct)
	}
	if q.Options["B"] != "220" {
		t.Errorf("option B = %q, want 220", q.Options["B"])
	}
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), quiz.Hard)
	want := quiz.Fallback()
	if q.Prompt != want.Prompt {
		t.Errorf("expected fallback question, got %q", q.Prompt)
	}
}

func TestGenerate_GarbageResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I cannot generate a question right now.`),
	})
	gen := New(mock, DefaultConfig())

	q := gen.Generate(context.Background(), quiz.Easy)
	want := quiz.Fallback()
	if q.Prompt != want.Prompt {
		t.Errorf("expected fallback question, got %q", q.Prompt)
	}
}

func TestGenerate_DifficultyInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedText),
	})
	gen := New(mock, DefaultConfig())

	gen.Generate(context.Background(), quiz.Hard)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "hard difficulty level") {
		t.Errorf("expected user message to name the difficulty, got %q", userMsg)
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedText),
	})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.5
	gen := New(mock, cfg)

	gen.Generate(context.Background(), quiz.Medium)

	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
}

func TestGenerate_NoSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedText),
	})
	gen := New(mock, DefaultConfig())

	gen.Generate(context.Background(), quiz.Medium)

	if mock.Calls[0].Schema != nil {
		t.Error("question generation should use plain text, not structured output")
	}
}
