package completion

import (
	"context"
	"fmt"
	"time"

	"travelrelay/internal/config"
)

// New builds the configured Completer. The returned close func is never nil.
func New(ctx context.Context, cfg config.LLMConfig) (Completer, func(), error) {
	switch cfg.Provider {
	case config.ProviderOpenRouter, "":
		return NewOpenRouter(OpenRouterConfig{
			Endpoint:  cfg.Endpoint,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		}), func() {}, nil
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.GeminiKey, DefaultGeminiModel, cfg.MaxTokens)
		if err != nil {
			return nil, func() {}, err
		}
		return g, func() { _ = g.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
