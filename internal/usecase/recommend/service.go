// Package recommend builds generation prompts from ranked results and
// degrades to deterministic summaries when generation is unavailable or
// below the quality floor.
package recommend

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
	"github.com/AliAbdallah21/foodrec/internal/logger"
	"github.com/AliAbdallah21/foodrec/internal/metrics"
)

// Service ties the context builder to the generation gateway. A gateway
// failure never reaches the caller: every path returns usable text.
type Service struct {
	gen Generator
}

// New creates a recommendation service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Recommend generates a grounded recommendation for the query. On gateway
// failure, or when the response is shorter than the quality floor, the
// deterministic fallback summary is returned instead.
func (s *Service) Recommend(ctx context.Context, query string, results []result.Result) string {
	prompt := recommendPrompt(query, BuildContext(results))

	text, err := s.gen.Generate(ctx, systemRecommend, prompt, recommendMaxTokens, generationTemp)
	if err != nil {
		logger.FromContext(ctx).Warn("generation failed, using fallback",
			zap.String("query", query),
			zap.Error(err),
		)
		metrics.GenerationRequestsTotal.WithLabelValues("recommend", "error").Inc()
		metrics.GenerationFallbacksTotal.WithLabelValues("recommend", "error").Inc()
		return FallbackSummary(query, results)
	}

	text = strings.TrimSpace(text)
	if len(text) < minResponseLength {
		logger.FromContext(ctx).Warn("generation response too short, using fallback",
			zap.String("query", query),
			zap.Int("length", len(text)),
		)
		metrics.GenerationRequestsTotal.WithLabelValues("recommend", "ok").Inc()
		metrics.GenerationFallbacksTotal.WithLabelValues("recommend", "short_response").Inc()
		return FallbackSummary(query, results)
	}

	metrics.GenerationRequestsTotal.WithLabelValues("recommend", "ok").Inc()
	return text
}

// Compare generates a comparison of two queries from their respective
// result sets, falling back to the deterministic two-line comparison on
// gateway failure.
func (s *Service) Compare(
	ctx context.Context, query1, query2 string, results1, results2 []result.Result,
) string {
	prompt := comparisonPrompt(query1, query2, BuildContext(results1), BuildContext(results2))

	text, err := s.gen.Generate(ctx, systemCompare, prompt, comparisonMaxTokens, generationTemp)
	if err != nil {
		logger.FromContext(ctx).Warn("comparison generation failed, using fallback",
			zap.String("query1", query1),
			zap.String("query2", query2),
			zap.Error(err),
		)
		metrics.GenerationRequestsTotal.WithLabelValues("compare", "error").Inc()
		metrics.GenerationFallbacksTotal.WithLabelValues("compare", "error").Inc()
		return FallbackComparison(query1, query2, results1, results2)
	}

	metrics.GenerationRequestsTotal.WithLabelValues("compare", "ok").Inc()
	return strings.TrimSpace(text)
}
