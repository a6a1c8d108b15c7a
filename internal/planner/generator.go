package planner

import (
	"context"
	"fmt"

	"auraquest/internal/config"

	"google.golang.org/genai"
)

// Request is one schema-constrained completion.
type Request struct {
	Prompt string
	Schema *genai.Schema
}

// Generator sends a Request to a hosted model and returns the raw response
// text. An empty string with a nil error means the service returned nothing.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// NewGenerator builds the generator for cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGenAIGenerator(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
