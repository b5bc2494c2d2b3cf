package rag

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns texts into vectors. The production implementation talks to
// the Gemini embedding API; tests plug in a deterministic fake.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

type GeminiEmbedder struct {
	client *genai.Client
	model  *genai.EmbeddingModel
	name   string
}

func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  client.EmbeddingModel(model),
		name:   model,
	}, nil
}

func (g *GeminiEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	batch := g.model.NewBatch()

	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}

	res, err := g.model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("embed %d texts with %v: %w", len(texts), g.name, err)
	}

	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed: got %d vectors for %d texts: %w", len(res.Embeddings), len(texts), ErrBadEmbedding)
	}

	vectors := make([][]float32, 0, len(res.Embeddings))

	for _, embedding := range res.Embeddings {
		vectors = append(vectors, embedding.Values)
	}

	return vectors, nil
}

func (g *GeminiEmbedder) Close() error {
	return g.client.Close()
}
