// Package chi exposes the HTTP API: article CRUD, category listing,
// search, health, and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/articledex/internal/domain"
	"github.com/kailas-cloud/articledex/internal/domain/language"
	"github.com/kailas-cloud/articledex/internal/domain/search/filter"
	"github.com/kailas-cloud/articledex/internal/metrics"
	articleuc "github.com/kailas-cloud/articledex/internal/usecase/article"
	healthuc "github.com/kailas-cloud/articledex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/articledex/internal/usecase/search"
)

// Server holds the use case services behind the HTTP handlers.
type Server struct {
	articles *articleuc.Service
	search   *searchuc.Service
	health   *healthuc.Service
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	articles *articleuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		articles: articles,
		search:   search,
		health:   health,
		logger:   logger,
	}
}

// Mount registers all routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Route("/api/v1/{lang}", func(r chi.Router) {
		r.Get("/articles", s.ListArticles)
		r.Post("/articles", s.CreateArticle)
		r.Get("/articles/{id}", s.GetArticle)
		r.Put("/articles/{id}", s.UpdateArticle)
		r.Delete("/articles/{id}", s.DeleteArticle)
		r.Get("/categories", s.ListCategories)
		r.Get("/search", s.Search)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListArticles handles GET /api/v1/{lang}/articles.
func (s *Server) ListArticles(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}

	articles, err := s.articles.List(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]ArticleResponse, len(articles))
	for i := range articles {
		items[i] = articleToDTO(&articles[i])
	}
	writeJSON(w, http.StatusOK, ArticleListResponse{Items: items, Total: len(items)})
}

// CreateArticle handles POST /api/v1/{lang}/articles.
func (s *Server) CreateArticle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := s.articles.Create(r.Context(), p, req.Title, req.Content, req.Author, req.Category)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/"+p.Code()+"/articles/"+strconv.Itoa(created.ID()))
	writeJSON(w, http.StatusCreated, articleToDTO(&created))
}

// GetArticle handles GET /api/v1/{lang}/articles/{id}.
func (s *Server) GetArticle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	a, err := s.articles.Get(r.Context(), p, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articleToDTO(&a))
}

// UpdateArticle handles PUT /api/v1/{lang}/articles/{id}.
func (s *Server) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := s.articles.Update(r.Context(), p, id, req.Title, req.Content, req.Author, req.Category)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articleToDTO(&updated))
}

// DeleteArticle handles DELETE /api/v1/{lang}/articles/{id}.
func (s *Server) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := s.articles.Delete(r.Context(), p, id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/v1/{lang}/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}

	categories, err := s.articles.Categories(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, CategoryListResponse{Items: categories})
}

// Search handles GET /api/v1/{lang}/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	p, ok := s.profileParam(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	rawQuery := q.Get("q")
	crit := filter.New(q.Get("category"), q.Get("author"))

	resp := s.search.Search(r.Context(), p, rawQuery, crit)

	metrics.SearchesTotal.WithLabelValues(p.Code(), string(resp.Mode)).Inc()
	metrics.SearchResultsReturned.WithLabelValues(p.Code()).Observe(float64(len(resp.Results)))

	writeJSON(w, http.StatusOK, searchToDTO(rawQuery, &resp))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// profileParam resolves the {lang} path parameter, writing a 400 on
// unknown codes.
func (s *Server) profileParam(w http.ResponseWriter, r *http.Request) (language.Profile, bool) {
	p, err := language.Parse(chi.URLParam(r, "lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnknownLanguage, err.Error())
		return language.Profile{}, false
	}
	return p, true
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "article id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrArticleNotFound,
		domain.ErrInvalidArticle,
		domain.ErrUnknownLanguage,
		domain.ErrStoreUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)

	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		writeError(w, http.StatusNotFound, codeArticleNotFound, msg)
	case errors.Is(err, domain.ErrInvalidArticle):
		writeError(w, http.StatusBadRequest, codeValidationFailed, msg)
	case errors.Is(err, domain.ErrUnknownLanguage):
		writeError(w, http.StatusBadRequest, codeUnknownLanguage, msg)
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, msg)
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
