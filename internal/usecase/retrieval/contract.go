package retrieval

import (
	"context"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/filter"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
)

// Index is the vector index contract for retrieval (ISP).
type Index interface {
	Search(ctx context.Context, query string, k int, f filter.Filter) ([]result.Hit, error)
}
