package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over chat-completion backends. The interview
// engine only ever needs single-turn generation: a system prompt setting the
// interviewer persona and one user message.
type Provider interface {
	// Complete sends the request and returns the model's reply. When the
	// request carries a Schema, the reply is validated JSON conforming to
	// it, available in Response.JSON.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Embedder turns text into a fixed-dimension vector. Deterministic per
// model version; results are not cached here.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)

	// ModelID returns the embedding model identifier.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// User is the user message content.
	User string

	// Schema, when set, instructs the provider to return JSON conforming
	// to it via the provider's native structured output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "labeled-answers".
	Name string

	// Description guides the model toward the intended output.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the raw textual content of the reply.
	Text string

	// JSON is the schema-validated output. Nil when no Schema was requested.
	JSON json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through unchanged, allowing direct model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
