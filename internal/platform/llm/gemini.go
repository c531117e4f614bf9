package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	apperrors "pixigpt-bot/internal/common/errors"
)

// Generator is the narrow interface the bot depends on for replies.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient is a stateless request/response client for the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client using an API key backend.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate produces a reply for the prompt. Any failure, including an empty
// response, surfaces as an upstream error; the caller substitutes a localized
// fallback message.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", apperrors.NewUpstreamError("generate content", err)
	}

	text := res.Text()
	if text == "" {
		return "", apperrors.NewUpstreamError("generate content", fmt.Errorf("empty response text"))
	}

	return text, nil
}
