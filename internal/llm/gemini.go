package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// Gemini is a Client backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed completion client.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Complete sends one completion request with low temperature and JSON-object
// response mode. An empty completion is reported as an error.
func (g *Gemini) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr[float32](0.2),
			ResponseMIMEType:  "application/json",
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty completion")
	}
	return text, nil
}
