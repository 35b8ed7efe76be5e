// File: services/intelligence/gemini.go
package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// callTimeout bounds every Gemini call; the upstream API has none.
const callTimeout = 30 * time.Second

// GeminiClient wraps one generative model for completions and one
// embedding model for vector search.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	embed  *genai.EmbeddingModel
}

func NewGeminiClient(apiKey, chatModel, embedModel string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(chatModel)
	model.SetTemperature(0.1)

	return &GeminiClient{
		client: client,
		model:  model,
		embed:  client.EmbeddingModel(embedModel),
	}, nil
}

// Complete sends a single prompt and returns the concatenated text parts.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// Embed returns the embedding vector for the given text.
func (g *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := g.embed.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("gemini returned no embedding")
	}
	return res.Embedding.Values, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
