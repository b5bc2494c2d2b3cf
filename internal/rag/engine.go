package rag

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"hotelconcierge/internal/catalog"
)

type catalogSource interface {
	Current() (*catalog.Snapshot, error)
}

// SectionMatch pairs a matched category with the profile section it was
// chunked from, so the caller gets structured data and not only chunk text.
type SectionMatch struct {
	Category        string  `json:"category"`
	SimilarityScore float64 `json:"similarity_score"`
	Data            any     `json:"data"`
}

// Answer is the retrieval result for one question. HasRelevantData false is
// a valid answer, not an error.
type Answer struct {
	Question        string         `json:"question"`
	RelevantData    []SectionMatch `json:"relevant_data"`
	SourceTexts     []string       `json:"source_texts"`
	Categories      []string       `json:"categories"`
	HasRelevantData bool           `json:"has_relevant_data"`
}

type Config struct {
	L        *zap.Logger
	Embedder Embedder
	Catalog  catalogSource
	IndexDir string
	Model    string
	TopK     int
	MinScore float64
}

// Engine answers hotel questions by cosine search over embedded profile
// chunks. The index is swapped atomically on rebuild; an in-flight query
// keeps the index it started with.
type Engine struct {
	l        *zap.Logger
	embedder Embedder
	catalog  catalogSource
	indexDir string
	model    string
	topK     int
	minScore float64

	mu    sync.RWMutex
	index *Index
}

func NewEngine(conf Config) *Engine {
	//nolint:exhaustruct
	return &Engine{
		l:        conf.L,
		embedder: conf.Embedder,
		catalog:  conf.Catalog,
		indexDir: conf.IndexDir,
		model:    conf.Model,
		topK:     conf.TopK,
		minScore: conf.MinScore,
	}
}

// Init loads the persisted index when it exists and matches the configured
// embedding model, otherwise builds a fresh one and saves it.
func (e *Engine) Init(ctx context.Context) error {
	index, err := LoadIndex(e.indexDir)

	switch {
	case err == nil && index.Model == e.model:
		e.mu.Lock()
		e.index = index
		e.mu.Unlock()

		e.l.Info("Retrieval index loaded from disk",
			zap.String("model", index.Model),
			zap.Int("documents", len(index.Documents)),
		)

		return nil
	case err == nil:
		e.l.Warn("Stored index was built with a different model, rebuilding",
			zap.String("stored", index.Model),
			zap.String("configured", e.model),
			zap.Error(ErrModelMismatch),
		)
	default:
		e.l.Info("No usable retrieval index on disk, building", zap.Error(err))
	}

	return e.Rebuild(ctx)
}

// Rebuild re-chunks the live catalog snapshot, embeds it, persists the
// result and swaps it in. On failure the previous index stays live.
func (e *Engine) Rebuild(ctx context.Context) error {
	snap, err := e.catalog.Current()
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	docs := BuildDocuments(snap.Profile)

	index, err := BuildIndex(ctx, e.embedder, e.model, docs)
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	if err := index.Save(e.indexDir); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	e.mu.Lock()
	e.index = index
	e.mu.Unlock()

	e.l.Info("Retrieval index rebuilt",
		zap.Int("documents", len(docs)),
		zap.Int("catalog_version", snap.Version),
	)

	return nil
}

// Query runs a top-k search, drops weak hits, dedupes by category keeping
// the best score, and attaches the structured profile section per category.
func (e *Engine) Query(ctx context.Context, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	e.mu.RLock()
	index := e.index
	e.mu.RUnlock()

	if index == nil {
		return nil, ErrNoIndex
	}

	snap, err := e.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	hits, err := index.Search(ctx, e.embedder, question, e.topK)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	answer := &Answer{
		Question:     question,
		RelevantData: []SectionMatch{},
		SourceTexts:  []string{},
		Categories:   []string{},
	}

	seen := make(map[string]struct{}, len(hits))

	// Hits arrive score-descending, so the first hit per category is the
	// best one.
	for _, hit := range hits {
		if hit.Score < e.minScore {
			continue
		}

		answer.SourceTexts = append(answer.SourceTexts, hit.Document.Text)

		if _, ok := seen[hit.Document.Category]; ok {
			continue
		}

		seen[hit.Document.Category] = struct{}{}

		answer.Categories = append(answer.Categories, hit.Document.Category)
		answer.RelevantData = append(answer.RelevantData, SectionMatch{
			Category:        hit.Document.Category,
			SimilarityScore: hit.Score,
			Data:            sectionData(snap.Profile, hit.Document.Category),
		})
	}

	answer.HasRelevantData = len(answer.RelevantData) > 0

	return answer, nil
}

func sectionData(p *catalog.Profile, category string) any {
	switch category {
	case CategoryBasicInfo:
		return struct {
			Name        string `json:"name"`
			Brand       string `json:"brand"`
			Address     string `json:"address"`
			PostalCode  string `json:"postal_code"`
			City        string `json:"city"`
			Country     string `json:"country"`
			Region      string `json:"region"`
			Description string `json:"description"`
		}{
			Name:        p.Hotel.Name,
			Brand:       p.Hotel.Brand,
			Address:     p.Hotel.Address,
			PostalCode:  p.Hotel.PostalCode,
			City:        p.Hotel.City,
			Country:     p.Hotel.Country,
			Region:      p.Hotel.Region,
			Description: p.Hotel.Description,
		}
	case CategoryContact:
		return struct {
			Phone   string `json:"phone"`
			Email   string `json:"email"`
			Website string `json:"website"`
		}{
			Phone:   p.Hotel.Phone,
			Email:   p.Hotel.Email,
			Website: p.Hotel.Website,
		}
	case CategoryParking:
		return p.Parking
	case CategoryTransportation:
		return p.Transport
	case CategoryRooms:
		return p.RoomsByCategory(catalog.CategoryHotelRoom)
	case CategoryBar:
		return p.Bar
	case CategoryWellness:
		return p.Wellness
	case CategoryFreeAmenities:
		return p.Amenities
	case CategoryMeetingRooms:
		return struct {
			Events catalog.Events `json:"events"`
			Rooms  []catalog.Room `json:"rooms"`
		}{
			Events: p.Events,
			Rooms:  p.RoomsByCategory(catalog.CategoryMeetingRoom),
		}
	default:
		return nil
	}
}
