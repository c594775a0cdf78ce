package breakdown

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/GoSim-25-26J-441/planner-backend/config"
)

// New builds the configured provider wrapped as
// instrumentation -> cache (when rdb != nil) -> rate limit -> provider.
// A provider selected without its API key degrades to Disabled.
func New(ctx context.Context, cfg *config.Config, rdb redis.Cmdable, log *zap.Logger) (Generator, error) {
	bc := cfg.Breakdown

	var provider Generator
	switch bc.Provider {
	case config.ProviderOpenAI:
		if bc.OpenAIKey == "" {
			log.Warn("OPENAI_API_KEY not set, breakdown generation disabled")
			provider = Disabled{}
			break
		}
		provider = NewOpenAIClient(OpenAIConfig{
			APIKey:  bc.OpenAIKey,
			BaseURL: bc.OpenAIBaseURL,
			Model:   bc.OpenAIModel,
			Timeout: bc.Timeout,
		})
	case config.ProviderGemini:
		if bc.GeminiKey == "" {
			log.Warn("GEMINI_API_KEY not set, breakdown generation disabled")
			provider = Disabled{}
			break
		}
		g, err := NewGeminiClient(ctx, bc.GeminiKey, bc.GeminiModel, genai.HTTPOptions{})
		if err != nil {
			return nil, err
		}
		provider = g
	default:
		provider = Disabled{}
	}

	if _, disabled := provider.(Disabled); disabled {
		return NewInstrumented(provider, config.ProviderDisabled, 0), nil
	}

	var gen Generator = NewRateLimited(provider, bc.RPS, bc.Burst)
	if rdb != nil {
		gen = NewCached(gen, rdb, cfg.Redis.CacheTTL)
	}
	return NewInstrumented(gen, bc.Provider, bc.Timeout), nil
}
