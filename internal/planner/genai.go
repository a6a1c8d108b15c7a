package planner

import (
	"context"
	"fmt"

	"auraquest/internal/config"

	"google.golang.org/genai"
)

// GenAIGenerator calls Gemini through the Google GenAI SDK.
type GenAIGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGenAIGenerator creates a Gemini generator. cfg.BaseURL, when set,
// replaces the public endpoint.
func NewGenAIGenerator(ctx context.Context, cfg config.LLMConfig) (*GenAIGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIGenerator{
		client:      client,
		model:       cfg.ResolvedModel(),
		temperature: cfg.Temperature,
	}, nil
}

func (g *GenAIGenerator) Name() string {
	return "gemini/" + g.model
}

// Generate requests a single non-streamed JSON response.
func (g *GenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	gc := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if g.temperature > 0 {
		gc.Temperature = genai.Ptr(g.temperature)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), gc)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}
