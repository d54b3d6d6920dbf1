package embcache

import (
	"context"
	"errors"
	"testing"

	"github.com/AliAbdallah21/foodrec/internal/domain"
)

func TestEmbed_MissCallsInnerAndCaches(t *testing.T) {
	kv := newMockKVStore()
	inner := &mockInnerEmbedder{
		result: domain.EmbeddingResult{Embedding: []float32{1, 2, 3}, TotalTokens: 12},
	}
	c := newTestCachedEmbedder(inner, kv)

	res, err := c.Embed(context.Background(), "pad thai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls: got %d, want 1", inner.calls)
	}
	if res.TotalTokens != 12 {
		t.Errorf("total tokens: got %d, want 12", res.TotalTokens)
	}
	if kv.sets != 1 {
		t.Errorf("cache writes: got %d, want 1", kv.sets)
	}
}

func TestEmbed_HitSkipsInner(t *testing.T) {
	kv := newMockKVStore()
	inner := &mockInnerEmbedder{
		result: domain.EmbeddingResult{Embedding: []float32{1, 2, 3}, TotalTokens: 12},
	}
	c := newTestCachedEmbedder(inner, kv)

	if _, err := c.Embed(context.Background(), "pad thai"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := c.Embed(context.Background(), "pad thai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls: got %d, want 1 (second call must hit the cache)", inner.calls)
	}
	if len(res.Embedding) != 3 || res.Embedding[0] != 1 {
		t.Errorf("cached embedding: got %v", res.Embedding)
	}
	if res.TotalTokens != 0 {
		t.Errorf("cache hit must report zero tokens, got %d", res.TotalTokens)
	}
}

func TestEmbed_DifferentTextsMiss(t *testing.T) {
	kv := newMockKVStore()
	inner := &mockInnerEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1}}}
	c := newTestCachedEmbedder(inner, kv)

	_, _ = c.Embed(context.Background(), "pad thai")
	_, _ = c.Embed(context.Background(), "ramen")

	if inner.calls != 2 {
		t.Errorf("inner calls: got %d, want 2", inner.calls)
	}
}

func TestEmbed_CorruptCacheDataFallsThrough(t *testing.T) {
	kv := newMockKVStore()
	inner := &mockInnerEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1}}}
	c := newTestCachedEmbedder(inner, kv)

	kv.data[c.cacheKey("pad thai")] = []byte{1, 2, 3} // not a multiple of 4

	res, err := c.Embed(context.Background(), "pad thai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls: got %d, want 1", inner.calls)
	}
	if len(res.Embedding) != 1 {
		t.Errorf("embedding: got %v", res.Embedding)
	}
}

func TestEmbed_StoreGetErrorFallsThrough(t *testing.T) {
	kv := newMockKVStore()
	kv.getErr = errors.New("connection reset")
	inner := &mockInnerEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1}}}
	c := newTestCachedEmbedder(inner, kv)

	if _, err := c.Embed(context.Background(), "pad thai"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls: got %d, want 1", inner.calls)
	}
}

func TestEmbed_InnerError(t *testing.T) {
	kv := newMockKVStore()
	wantErr := errors.New("provider down")
	inner := &mockInnerEmbedder{err: wantErr}
	c := newTestCachedEmbedder(inner, kv)

	if _, err := c.Embed(context.Background(), "pad thai"); !errors.Is(err, wantErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if kv.sets != 0 {
		t.Error("nothing should be cached after an inner failure")
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	c := newTestCachedEmbedder(&mockInnerEmbedder{}, newMockKVStore())

	a := c.cacheKey("pad thai")
	b := c.cacheKey("pad thai")
	if a != b {
		t.Errorf("cache key must be deterministic: %q vs %q", a, b)
	}
	if c.cacheKey("ramen") == a {
		t.Error("different texts must produce different cache keys")
	}
}
