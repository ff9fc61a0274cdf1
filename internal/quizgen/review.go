package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quiz"
)

// Review is the tutor's assessment of a completed test.
type Review struct {
	// Overall is a short overall assessment of the attempt.
	Overall string `json:"overall"`

	// Tips are concrete study suggestions, one per missed topic.
	Tips []string `json:"tips"`
}

// Reviewer produces a post-test review of a completed attempt.
type Reviewer interface {
	// Review assesses the attempt. Unlike question generation there is
	// no fallback: callers should treat an error as "review
	// unavailable" and carry on.
	Review(ctx context.Context, summary *quiz.Summary) (*Review, error)
}

// ReviewSchema is the JSON schema for the structured review response.
var ReviewSchema = &llm.Schema{
	Name:        "test-review",
	Description: "Assessment of a completed GMAT practice test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall": map[string]any{
				"type":        "string",
				"description": "Two or three sentences assessing the attempt",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete study suggestions based on the missed questions",
			},
		},
		"required":             []any{"overall", "tips"},
		"additionalProperties": false,
	},
}

const reviewSystemPrompt = `You are a GMAT tutor reviewing a student's completed practice test.

Rules:
- Assess the attempt in two or three encouraging but honest sentences.
- For each missed question, give one concrete study tip naming the underlying topic.
- If nothing was missed, return a single tip suggesting the next challenge.
- Use plain ASCII text. No LaTeX, no Unicode symbols.`

// LLMReviewer implements Reviewer using the LLM provider.
type LLMReviewer struct {
	provider llm.Provider
}

// NewReviewer creates an LLMReviewer backed by the given provider.
func NewReviewer(provider llm.Provider) *LLMReviewer {
	return &LLMReviewer{provider: provider}
}

// Review assesses the attempt described by summary.
func (r *LLMReviewer) Review(ctx context.Context, summary *quiz.Summary) (*Review, error) {
	ctx = llm.WithPurpose(ctx, "review")

	req := llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReviewMessage(summary)},
		},
		Schema:      ReviewSchema,
		MaxTokens:   512,
		Temperature: 0.3,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("review generation failed: %w", err)
	}

	var review Review
	if err := json.Unmarshal(resp.Content, &review); err != nil {
		return nil, fmt.Errorf("failed to parse review response: %w", err)
	}

	return &review, nil
}

// buildReviewMessage formats the attempt for the prompt.
func buildReviewMessage(summary *quiz.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Score: %d out of %d (%d of %d questions correct)\n",
		summary.Score, summary.MaxScore, summary.Correct, summary.Answered)

	if len(summary.Missed) == 0 {
		b.WriteString("\nNo questions were missed.")
		return b.String()
	}

	b.WriteString("\nMissed questions:\n")
	for i, rec := range summary.Missed {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, rec.Difficulty, rec.Question)
		fmt.Fprintf(&b, "   Answered %s, correct was %s\n", rec.Chosen, rec.Correct)
	}

	return strings.TrimRight(b.String(), "\n")
}
