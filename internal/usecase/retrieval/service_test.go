package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/filter"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
)

// --- Mocks ---

type mockIndex struct {
	hits    []result.Hit
	err     error
	gotK    int
	gotText string
	gotF    filter.Filter
}

func (m *mockIndex) Search(_ context.Context, query string, k int, f filter.Filter) ([]result.Hit, error) {
	m.gotText = query
	m.gotK = k
	m.gotF = f
	if m.err != nil {
		return nil, m.err
	}
	return m.hits, nil
}

// --- Tests ---

func TestSearch_ConvertsHitsInOrder(t *testing.T) {
	idx := &mockIndex{
		hits: []result.Hit{
			{ID: "3", Distance: 0.1, Meta: result.Metadata{Name: "A"}},
			{ID: "9", Distance: 0.4, Meta: result.Metadata{Name: "B"}},
			{ID: "5", Distance: 0.2, Meta: result.Metadata{Name: "C"}},
		},
	}

	results := New(idx).Search(context.Background(), "noodles", 5, filter.Filter{})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// index return order preserved, no re-sort
	wantIDs := []string{"3", "9", "5"}
	for i, w := range wantIDs {
		if results[i].ID() != w {
			t.Errorf("result %d id: got %q, want %q", i, results[i].ID(), w)
		}
	}
	if results[0].Score() != 0.9 {
		t.Errorf("score: got %v, want 0.9", results[0].Score())
	}
	if results[0].Name() != "A" {
		t.Errorf("name: got %q", results[0].Name())
	}
}

func TestSearch_IndexFailureDegradesToEmpty(t *testing.T) {
	idx := &mockIndex{err: errors.New("index gone")}

	results := New(idx).Search(context.Background(), "noodles", 5, filter.Filter{})

	if results == nil {
		t.Fatal("degraded search must return an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_PassesArgumentsThrough(t *testing.T) {
	idx := &mockIndex{}
	maxCal := 400
	f := filter.Compose("Thai", &maxCal)

	New(idx).Search(context.Background(), "spicy noodles", 7, f)

	if idx.gotText != "spicy noodles" {
		t.Errorf("query: got %q", idx.gotText)
	}
	if idx.gotK != 7 {
		t.Errorf("k: got %d", idx.gotK)
	}
	if len(idx.gotF.Conditions()) != 2 {
		t.Errorf("filter conditions: got %d", len(idx.gotF.Conditions()))
	}
}

func TestSearch_EmptyHits(t *testing.T) {
	results := New(&mockIndex{}).Search(context.Background(), "q", 5, filter.Filter{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}
