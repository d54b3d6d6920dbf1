package embcache

import (
	"context"

	"go.uber.org/zap"

	"github.com/AliAbdallah21/foodrec/internal/db"
	"github.com/AliAbdallah21/foodrec/internal/domain"
)

// --- Mocks ---

type mockKVStore struct {
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{data: map[string][]byte{}}
}

func (m *mockKVStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKVStore) Set(_ context.Context, key string, value []byte) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

type mockInnerEmbedder struct {
	result domain.EmbeddingResult
	err    error
	calls  int
}

func (m *mockInnerEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return m.result, nil
}

func newTestCachedEmbedder(inner domain.Embedder, s store) *CachedEmbedder {
	return New(inner, s, nil, zap.NewNop())
}
