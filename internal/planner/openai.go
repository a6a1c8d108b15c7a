package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"auraquest/internal/config"
	"auraquest/internal/itinerary"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator calls an OpenAI-compatible chat completion endpoint with a
// json_schema response format.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIGenerator creates an OpenAI generator. cfg.BaseURL, when set,
// points it at any OpenAI-compatible server.
func NewOpenAIGenerator(cfg config.LLMConfig) *OpenAIGenerator {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.ResolvedModel(),
		temperature: cfg.Temperature,
	}
}

func (g *OpenAIGenerator) Name() string {
	return "openai/" + g.model
}

// Generate ignores req.Schema in favour of the equivalent JSON Schema.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	raw, err := json.Marshal(itinerary.JSONSchema())
	if err != nil {
		return "", fmt.Errorf("marshal response schema: %w", err)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "itinerary",
				Schema: json.RawMessage(raw),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
