package enhance

import (
	"context"
	"fmt"
	"os"

	"github.com/RNSsanjay/agentium/internal/observe"
)

// Config selects and tunes the enhancer backend for a run.
type Config struct {
	// Backend is one of gemini, openai, ollama, local or auto.
	// Auto picks Gemini when a key is available, local otherwise.
	Backend         string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// KeyLookup resolves a configuration key (e.g. "gemini.api_key") from the
// config store. May be nil when no store is available.
type KeyLookup func(key string) string

// Select builds the enhancer for a run. The choice happens once here;
// pipeline steps never branch between AI and local paths themselves.
// A missing API key is not an error on the auto path: it logs a warning
// and downgrades to the local heuristics.
func Select(ctx context.Context, cfg Config, lookup KeyLookup, obs *observe.Observer) (Enhancer, error) {
	local := NewLocalEnhancer()

	resolve := func(envVar, storeKey string) string {
		if v := os.Getenv(envVar); v != "" {
			return v
		}
		if lookup != nil {
			return lookup(storeKey)
		}
		return ""
	}

	backend := cfg.Backend
	if backend == "" {
		backend = "auto"
	}

	switch backend {
	case "local":
		return local, nil

	case "auto":
		apiKey := resolve("GEMINI_API_KEY", "gemini.api_key")
		if apiKey == "" {
			obs.Log().Warn().Msg("no GEMINI_API_KEY found, AI enhancement disabled; continuing with local processing")
			return local, nil
		}
		gen, err := NewGeminiGenerator(ctx, apiKey, GeminiConfig{
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		})
		if err != nil {
			obs.Log().Warn().Err(err).Msg("gemini unavailable, continuing with local processing")
			return local, nil
		}
		return NewFallback(NewPromptEnhancer(gen), local, obs), nil

	case "gemini":
		apiKey := resolve("GEMINI_API_KEY", "gemini.api_key")
		gen, err := NewGeminiGenerator(ctx, apiKey, GeminiConfig{
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini: %w", err)
		}
		return NewFallback(NewPromptEnhancer(gen), local, obs), nil

	case "openai":
		apiKey := resolve("OPENAI_API_KEY", "openai.api_key")
		var baseURL string
		if lookup != nil {
			baseURL = lookup("openai.base_url")
		}
		gen, err := NewOpenAIGenerator(apiKey, baseURL, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize openai: %w", err)
		}
		return NewFallback(NewPromptEnhancer(gen), local, obs), nil

	case "ollama":
		gen, err := NewOllamaGenerator(cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ollama: %w", err)
		}
		return NewFallback(NewPromptEnhancer(gen), local, obs), nil

	default:
		return nil, fmt.Errorf("unknown enhancer backend: %s", backend)
	}
}

// ModelName reports the model identifier behind an enhancer, for run
// metadata. The local backend reports "local".
func ModelName(e Enhancer) string {
	type modeler interface{ Model() string }

	switch v := e.(type) {
	case *Fallback:
		return ModelName(v.remote)
	case *promptEnhancer:
		if m, ok := v.gen.(modeler); ok {
			return m.Model()
		}
		return v.gen.Name()
	default:
		return e.Name()
	}
}
