package llm

import (
	"context"
	"fmt"

	"github.com/neutrino09/intervu/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base.
	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from INTERVU_* env vars, falling
// back to probing the standard key env vars when no provider is selected
// explicitly.
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

// NewEmbedder creates the embedding client from configuration, wrapped
// with retry and logging middleware.
func NewEmbedder(cfg Config, eventRepo store.EventRepo) (Embedder, error) {
	embCfg := cfg.Embedding
	embCfg.APIKey = cfg.EmbeddingKey()

	base, err := NewOpenAIEmbedder(embCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing embedder: %w", err)
	}

	logged := WithEmbedderLogging(base, eventRepo)
	return WithEmbedderRetry(logged, cfg.Retry), nil
}

// NewEmbedderFromEnv builds an Embedder from env configuration.
func NewEmbedderFromEnv(eventRepo store.EventRepo) (Embedder, error) {
	cfg := ConfigFromEnv()
	return NewEmbedder(cfg, eventRepo)
}
