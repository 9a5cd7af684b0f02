package llm

import (
	"context"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEmbedder implements Embedder using the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

// NewOpenAIEmbedder creates an embedder for the configured model.
func NewOpenAIEmbedder(cfg EmbeddingConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "text-embedding-3-small"
	}

	return &OpenAIEmbedder{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: []string{text},
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Data) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no embedding data in response"),
		}
	}

	vec := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float64(v)
	}
	return vec, nil
}

func (e *OpenAIEmbedder) ModelID() string {
	return e.model
}

// MockEmbedder is a deterministic Embedder for testing. Vectors are served
// from a fixed lookup by input text, falling back to Fallback when the text
// is not present. Every call is counted.
type MockEmbedder struct {
	mu       sync.Mutex
	Vectors  map[string][]float64
	Fallback []float64
	Err      error
	calls    int
}

// NewMockEmbedder creates a MockEmbedder with the given canned vectors.
func NewMockEmbedder(vectors map[string][]float64) *MockEmbedder {
	return &MockEmbedder{Vectors: vectors}
}

func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++

	if m.Err != nil {
		return nil, m.Err
	}
	if v, ok := m.Vectors[text]; ok {
		return v, nil
	}
	if m.Fallback != nil {
		return m.Fallback, nil
	}
	return nil, &ErrProviderUnavailable{Err: fmt.Errorf("no canned vector for %q", text)}
}

func (m *MockEmbedder) ModelID() string {
	return "mock-embedding"
}

// CallCount returns the number of Embed calls made.
func (m *MockEmbedder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
