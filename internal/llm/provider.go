package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the question-generation collaborator.
// Gmatize issues single-turn requests: plain text for question
// generation (the parser handles structure), JSON schema output for the
// post-test review.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its completion.
	// When the request carries a Schema, the response Content is JSON
	// validated against it; otherwise Content is the raw completion
	// text of the first candidate.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Empty for plain generation.
	System string

	// Messages is the conversation. Always a single user message here.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "test-review".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is raw completion text, or validated JSON when the
	// request carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Text returns the response content as plain text, stripped of the
// JSON wrapping if the content happens to be a quoted string.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
