package out

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"najah/internal/modules/tutor/domain"
	tutorout "najah/internal/modules/tutor/port/out"
)

// GeminiGenerator calls the Gemini API. The client is created on first use
// so a process that never asks a question never dials out.
type GeminiGenerator struct {
	apiKey string
	model  string

	once      sync.Once
	client    *genai.Client
	clientErr error
}

func NewGeminiGenerator(apiKey, model string) tutorout.Generator {
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, systemInstruction, question string) (string, error) {
	client, err := g.dial(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(question), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(domain.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func (g *GeminiGenerator) dial(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if g.clientErr != nil {
			g.clientErr = fmt.Errorf("create gemini client: %w", g.clientErr)
		}
	})
	return g.client, g.clientErr
}
