package quizgen

import (
	"context"

	"github.com/gmatize/gmatize/internal/llm"
	"github.com/gmatize/gmatize/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single question at the given difficulty.
// Provider failures and unparseable responses degrade to the fixed
// fallback question rather than an error; failures are still visible
// in the LLM event log.
func (g *LLMGenerator) Generate(ctx context.Context, difficulty quiz.Difficulty) quiz.Question {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(difficulty)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return quiz.Fallback()
	}

	return quiz.Parse(resp.Text())
}
