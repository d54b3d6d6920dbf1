// Package chi is the HTTP transport: request decoding, routing, and
// response shaping for the recommendation API.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/filter"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
	healthuc "github.com/AliAbdallah21/foodrec/internal/usecase/health"
	recommenduc "github.com/AliAbdallah21/foodrec/internal/usecase/recommend"
	retrievaluc "github.com/AliAbdallah21/foodrec/internal/usecase/retrieval"
)

// Error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
)

// Server exposes the retrieval and recommendation usecases over HTTP.
type Server struct {
	retrieval *retrievaluc.Service
	recommend *recommenduc.Service
	health    *healthuc.Service
	logger    *zap.Logger
	defaultK  int
}

// NewServer creates an HTTP API server. defaultK bounds result counts when
// a request leaves k unset.
func NewServer(
	retrieval *retrievaluc.Service,
	recommend *recommenduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
	defaultK int,
) *Server {
	return &Server{
		retrieval: retrieval,
		recommend: recommend,
		health:    health,
		logger:    logger,
		defaultK:  defaultK,
	}
}

// RegisterRoutes mounts all API routes on the given router. Middleware is
// composed by the caller.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.Search)
		r.Post("/recommend", s.Recommend)
		r.Post("/compare", s.Compare)
	})
}

type searchRequest struct {
	Query       string `json:"query"`
	K           int    `json:"k,omitempty"`
	Cuisine     string `json:"cuisine,omitempty"`
	MaxCalories *int   `json:"max_calories,omitempty"`
}

type searchResultItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Cuisine         string   `json:"cuisine"`
	Calories        int      `json:"calories"`
	Ingredients     []string `json:"ingredients,omitempty"`
	HealthBenefits  string   `json:"health_benefits,omitempty"`
	CookingMethod   string   `json:"cooking_method,omitempty"`
	TasteProfile    string   `json:"taste_profile,omitempty"`
	SimilarityScore float64  `json:"similarity_score"`
	Distance        float64  `json:"distance"`
}

type searchResponse struct {
	Results []searchResultItem `json:"results"`
	Total   int                `json:"total"`
}

// Search handles POST /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}

	results := s.retrieval.Search(
		r.Context(), req.Query, s.resolveK(req.K), filter.Compose(req.Cuisine, req.MaxCalories),
	)

	writeJSON(w, http.StatusOK, searchResponse{
		Results: resultsToItems(results),
		Total:   len(results),
	})
}

type recommendResponse struct {
	Response string             `json:"response"`
	Results  []searchResultItem `json:"results"`
}

// Recommend handles POST /v1/recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}

	results := s.retrieval.Search(
		r.Context(), req.Query, s.resolveK(req.K), filter.Compose(req.Cuisine, req.MaxCalories),
	)
	response := s.recommend.Recommend(r.Context(), req.Query, results)

	writeJSON(w, http.StatusOK, recommendResponse{
		Response: response,
		Results:  resultsToItems(results),
	})
}

type compareRequest struct {
	Query1 string `json:"query1"`
	Query2 string `json:"query2"`
	K      int    `json:"k,omitempty"`
}

type compareResponse struct {
	Response string             `json:"response"`
	Results1 []searchResultItem `json:"results1"`
	Results2 []searchResultItem `json:"results2"`
}

// Compare handles POST /v1/compare.
func (s *Server) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query1 == "" || req.Query2 == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "both query1 and query2 are required")
		return
	}

	k := s.resolveK(req.K)
	results1 := s.retrieval.Search(r.Context(), req.Query1, k, filter.Filter{})
	results2 := s.retrieval.Search(r.Context(), req.Query2, k, filter.Filter{})
	response := s.recommend.Compare(r.Context(), req.Query1, req.Query2, results1, results2)

	writeJSON(w, http.StatusOK, compareResponse{
		Response: response,
		Results1: resultsToItems(results1),
		Results2: resultsToItems(results2),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) resolveK(k int) int {
	if k <= 0 {
		return s.defaultK
	}
	return k
}

func resultsToItems(results []result.Result) []searchResultItem {
	items := make([]searchResultItem, len(results))
	for i := range results {
		r := &results[i]
		items[i] = searchResultItem{
			ID:              r.ID(),
			Name:            r.Name(),
			Description:     r.Description(),
			Cuisine:         r.Cuisine(),
			Calories:        r.Calories(),
			Ingredients:     r.Ingredients(),
			HealthBenefits:  r.HealthBenefits(),
			CookingMethod:   r.CookingMethod(),
			TasteProfile:    r.TasteProfile(),
			SimilarityScore: r.Score(),
			Distance:        r.Distance(),
		}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}
