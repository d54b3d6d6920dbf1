// Package retrieval turns a free-text query plus optional structured
// constraints into a ranked result set.
package retrieval

import (
	"context"

	"go.uber.org/zap"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/filter"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
	"github.com/AliAbdallah21/foodrec/internal/logger"
	"github.com/AliAbdallah21/foodrec/internal/metrics"
)

// Service ranks index hits for a query. Ranking authority stays with the
// vector index: hits are converted in return order and never re-sorted.
type Service struct {
	index Index
}

// New creates a retrieval service.
func New(index Index) *Service {
	return &Service{index: index}
}

// Search runs a filtered similarity search and derives a similarity score
// from each hit's raw distance. An index failure is absorbed: it is logged
// and surfaced as an empty result set, so callers see "no results" and
// "search failed" identically. Fewer than k results means the index is
// exhausted, not an error.
func (s *Service) Search(
	ctx context.Context, query string, k int, f filter.Filter,
) []result.Result {
	hits, err := s.index.Search(ctx, query, k, f)
	if err != nil {
		logger.FromContext(ctx).Warn("search degraded to empty result",
			zap.String("query", query),
			zap.Int("k", k),
			zap.Error(err),
		)
		metrics.SearchRequestsTotal.WithLabelValues("degraded").Inc()
		metrics.SearchResultsReturned.Observe(0)
		return []result.Result{}
	}

	results := make([]result.Result, 0, len(hits))
	for _, hit := range hits {
		results = append(results, result.New(hit.ID, hit.Distance, hit.Meta))
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchResultsReturned.Observe(float64(len(results)))

	return results
}
