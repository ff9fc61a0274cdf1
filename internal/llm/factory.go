package llm

import (
	"context"
	"fmt"

	"github.com/gmatize/gmatize/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		// OpenRouter speaks the OpenAI chat API.
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	case "mock":
		base = NewMockProvider(MockResponse{Content: mockQuestionText()})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from GMATIZE_* environment
// variables, falling back to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}

	return NewProvider(ctx, cfg, eventRepo)
}

// mockQuestionText is the canned completion served by the mock
// provider, letting the app run end to end without an API key.
func mockQuestionText() []byte {
	return []byte(`Question: A train travels 180 miles in 3 hours. At that rate, how many miles does it travel in 5 hours?
A) 240
B) 270
C) 300
D) 330
E) 360
Correct Answer: C`)
}
