// Package indexer owns the vector index for the food catalog: document
// synthesis, bulk upsert, and filtered KNN search.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AliAbdallah21/foodrec/internal/db"
	"github.com/AliAbdallah21/foodrec/internal/domain"
	"github.com/AliAbdallah21/foodrec/internal/domain/food"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/filter"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
)

// store is the consumer interface for the index (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// embedder turns text into a vector.
type embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Options tunes the created index.
type Options struct {
	Dimensions      int
	HNSWM           int
	HNSWEFConstruct int
}

// Repo implements the index adapter over a vector-capable store.
type Repo struct {
	store      store
	embedder   embedder
	collection string
	opts       Options
}

// New creates an index adapter for the named collection.
func New(s store, e embedder, collection string, opts Options) *Repo {
	return &Repo{store: s, embedder: e, collection: collection, opts: opts}
}

// Upsert registers one document per catalog item in a single bulk write.
// Any same-named index from a prior run is dropped first, so re-running
// against the same collection name leaves exactly len(catalog) documents.
// Duplicate item ids are disambiguated with _1, _2, ... suffixes.
func (r *Repo) Upsert(ctx context.Context, catalog food.Catalog) error {
	if err := r.recreateIndex(ctx); err != nil {
		return err
	}

	if len(catalog) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, 0, len(catalog))
	usedIDs := make(map[string]bool, len(catalog))

	for i := range catalog {
		item := &catalog[i]

		doc := documentText(item)
		emb, err := r.embedder.Embed(ctx, doc)
		if err != nil {
			return fmt.Errorf("embed document %s: %w", item.ID, err)
		}

		id := uniqueID(item.ID, usedIDs)
		usedIDs[id] = true

		fields := itemFields(item, doc)
		fields[db.FieldVector] = string(db.VectorToBytes(emb.Embedding))

		items = append(items, db.HashSetItem{Key: r.docKey(id), Fields: fields})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("store documents: %w", err)
	}
	return nil
}

// Search embeds the query text and runs a filtered KNN lookup. The index's
// return order is preserved; fewer than k hits means the index is exhausted,
// not an error.
func (r *Repo) Search(ctx context.Context, query string, k int, f filter.Filter) ([]result.Hit, error) {
	emb, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	res, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.indexName(),
		Vector:       emb.Embedding,
		K:            k,
		Filters:      f,
		ReturnFields: metadataFields,
	})
	if err != nil {
		return nil, fmt.Errorf("knn search: %w: %w", domain.ErrRetrievalFailed, err)
	}

	hits := make([]result.Hit, 0, len(res.Entries))
	for _, entry := range res.Entries {
		hits = append(hits, result.Hit{
			ID:       r.docID(entry.Key),
			Meta:     metadataFromFields(entry.Fields),
			Distance: entry.Distance,
		})
	}
	return hits, nil
}

// recreateIndex drops any index left from a prior run and creates a fresh one.
func (r *Repo) recreateIndex(ctx context.Context) error {
	if err := r.store.DropIndex(ctx, r.indexName()); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("drop index: %w", err)
	}

	def := &db.IndexDefinition{
		Name:     r.indexName(),
		Prefixes: []string{r.keyPrefix()},
		Fields: []db.IndexField{
			{Name: fieldCuisine, Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: fieldCalories, Type: db.IndexFieldNumeric},
			{
				Name:              db.FieldVector,
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         r.opts.Dimensions,
				VectorDistance:    db.DistanceCosine,
				VectorM:           r.opts.HNSWM,
				VectorEFConstruct: r.opts.HNSWEFConstruct,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

func (r *Repo) indexName() string {
	return domain.KeyPrefix + r.collection + ":idx"
}

func (r *Repo) keyPrefix() string {
	return domain.KeyPrefix + r.collection + ":doc:"
}

func (r *Repo) docKey(id string) string {
	return r.keyPrefix() + id
}

func (r *Repo) docID(key string) string {
	return strings.TrimPrefix(key, r.keyPrefix())
}

// uniqueID appends _1, _2, ... until the id is unused within this upsert.
func uniqueID(base string, used map[string]bool) string {
	id := base
	for counter := 1; used[id]; counter++ {
		id = fmt.Sprintf("%s_%d", base, counter)
	}
	return id
}
