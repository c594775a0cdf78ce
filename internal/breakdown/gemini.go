package breakdown

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient generates breakdowns through the Gemini API with a JSON response schema.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string, opts genai.HTTPOptions) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: opts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

var geminiSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"features": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":         {Type: genai.TypeString},
					"description":  {Type: genai.TypeString},
					"featureSpecs": {Type: genai.TypeString},
				},
				Required: []string{"name", "description", "featureSpecs"},
			},
		},
	},
	Required: []string{"features"},
}

func (g *GeminiClient) Generate(ctx context.Context, req Request) ([]Draft, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    geminiSchema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(req)), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	return decodeDrafts(resp.Text())
}
