package indexer

import (
	"context"

	"github.com/AliAbdallah21/foodrec/internal/db"
	"github.com/AliAbdallah21/foodrec/internal/domain"
)

// --- Mocks ---

type mockStore struct {
	hsetItems    []db.HashSetItem
	hsetErr      error
	createdIndex *db.IndexDefinition
	createErr    error
	droppedIndex string
	dropErr      error
	searchQuery  *db.KNNQuery
	searchResult *db.SearchResult
	searchErr    error
}

func (m *mockStore) HSetMulti(_ context.Context, items []db.HashSetItem) error {
	m.hsetItems = items
	return m.hsetErr
}

func (m *mockStore) CreateIndex(_ context.Context, def *db.IndexDefinition) error {
	m.createdIndex = def
	return m.createErr
}

func (m *mockStore) DropIndex(_ context.Context, name string) error {
	m.droppedIndex = name
	return m.dropErr
}

func (m *mockStore) SearchKNN(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	m.searchQuery = q
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if m.searchResult == nil {
		return &db.SearchResult{}, nil
	}
	return m.searchResult, nil
}

type mockEmbedder struct {
	vec   []float32
	err   error
	texts []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.texts = append(m.texts, text)
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}
