package db

import "github.com/AliAbdallah21/foodrec/internal/domain/search/filter"

// FieldVector is the hash field holding the embedding blob.
const FieldVector = "vector"

// FieldDistance is the alias under which the raw KNN distance is returned.
const FieldDistance = "__vector_distance"

// KNNQuery describes a K-nearest-neighbor search with an optional
// metadata pre-filter applied before the KNN stage.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	Filters      filter.Filter
	ReturnFields []string
}

// SearchEntry is a single hit returned by the index. Distance is the raw
// cosine distance reported by the KNN stage; callers derive similarity.
type SearchEntry struct {
	Key      string
	Distance float64
	Fields   map[string]string
}

// SearchResult is the full response of a KNN search.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}
