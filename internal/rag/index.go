package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const indexFileName = "index.json"

// Index is a complete embedded view of the profile documents. It is built
// once and treated as immutable; a rebuild produces a fresh Index.
type Index struct {
	Model     string      `json:"model"`
	BuiltAt   time.Time   `json:"built_at"`
	Documents []Document  `json:"documents"`
	Vectors   [][]float32 `json:"vectors"`
}

// Hit is one scored document from a search.
type Hit struct {
	Document Document
	Score    float64
}

// BuildIndex embeds every document in one batch.
func BuildIndex(ctx context.Context, embedder Embedder, model string, docs []Document) (*Index, error) {
	texts := make([]string, 0, len(docs))

	for _, doc := range docs {
		texts = append(texts, doc.Text)
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	return &Index{
		Model:     model,
		BuiltAt:   time.Now().UTC(),
		Documents: docs,
		Vectors:   vectors,
	}, nil
}

// LoadIndex reads a previously saved index from dir.
func LoadIndex(dir string) (*Index, error) {
	raw, err := os.ReadFile(filepath.Join(dir, indexFileName))
	if err != nil {
		return nil, fmt.Errorf("read index file: %w", err)
	}

	var index Index

	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("parse index file: %w", err)
	}

	if len(index.Documents) != len(index.Vectors) {
		return nil, fmt.Errorf("index file has %d documents but %d vectors: %w",
			len(index.Documents), len(index.Vectors), ErrBadEmbedding)
	}

	return &index, nil
}

// Save writes the index to dir, creating it if needed. The file is written
// to a temp name first so a crash never leaves a truncated index behind.
func (ix *Index) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index dir %v: %w", dir, err)
	}

	raw, err := json.Marshal(ix)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	target := filepath.Join(dir, indexFileName)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write index file: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("install index file: %w", err)
	}

	return nil
}

// Search embeds the question and returns up to topK documents by descending
// cosine similarity.
func (ix *Index) Search(ctx context.Context, embedder Embedder, question string, topK int) ([]Hit, error) {
	vectors, err := embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed question: got %d vectors: %w", len(vectors), ErrBadEmbedding)
	}

	hits := make([]Hit, 0, len(ix.Documents))

	for i, doc := range ix.Documents {
		hits = append(hits, Hit{
			Document: doc,
			Score:    cosine(vectors[0], ix.Vectors[i]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}

	return hits, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64

	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
