package quizgen

import (
	"context"

	"github.com/gmatize/gmatize/internal/quiz"
)

// Generator produces GMAT-style quantitative questions.
type Generator interface {
	// Generate produces a single question at the given difficulty.
	// It never fails: when the LLM is unreachable or returns text the
	// parser cannot use, a built-in fallback question is returned so
	// the test always continues.
	Generate(ctx context.Context, difficulty quiz.Difficulty) quiz.Question
}
