// Package chi exposes the HTTP API.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Baterdene23/yellbook/internal/domain"
	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
	"github.com/Baterdene23/yellbook/internal/domain/search/request"
	"github.com/Baterdene23/yellbook/internal/domain/search/result"
	"github.com/Baterdene23/yellbook/internal/logger"
	healthuc "github.com/Baterdene23/yellbook/internal/usecase/health"
)

// searchService is the semantic search contract consumed by the transport.
type searchService interface {
	Search(ctx context.Context, req request.Request) ([]result.Result, error)
	InvalidateCache(ctx context.Context, query string) error
	ClearAllCache(ctx context.Context) (int, error)
}

// entryService is the directory CRUD contract consumed by the transport.
type entryService interface {
	Create(ctx context.Context, p domentry.Params) (domentry.Entry, error)
	Get(ctx context.Context, id string) (domentry.Entry, error)
	List(ctx context.Context) ([]domentry.Entry, error)
	Update(ctx context.Context, id string, p domentry.Params) (domentry.Entry, error)
	Delete(ctx context.Context, id string) error
}

// healthService reports component health.
type healthService interface {
	Check(ctx context.Context) healthuc.Report
}

// statusMapping maps a domain sentinel to an HTTP status and error code.
type statusMapping struct {
	sentinel error
	status   int
	code     string
}

// Server registers the HTTP handlers.
type Server struct {
	search   searchService
	entries  entryService
	health   healthService
	limits   request.Limits
	mappings []statusMapping
}

// NewServer creates an HTTP API server. limits carries the configured
// request validation bounds; the zero value keeps the package defaults.
func NewServer(search searchService, entries entryService, health healthService, limits request.Limits) *Server {
	return &Server{
		search:  search,
		entries: entries,
		health:  health,
		limits:  limits,
		mappings: []statusMapping{
			{domain.ErrInvalidQuery, http.StatusBadRequest, "invalid_query"},
			{domain.ErrEntryNotFound, http.StatusNotFound, "entry_not_found"},
			{domain.ErrAlreadyExists, http.StatusConflict, "entry_already_exists"},
			{domain.ErrEmbeddingProviderError, http.StatusBadGateway, "embedding_provider_error"},
			{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "store_unavailable"},
			{domain.ErrCacheUnavailable, http.StatusServiceUnavailable, "cache_unavailable"},
		},
	}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/api/ai/yellow-books/search", s.handleSearch)
	r.Delete("/api/ai/yellow-books/cache", s.handleDeleteCache)

	r.Post("/api/yellow-books", s.handleCreateEntry)
	r.Get("/api/yellow-books", s.handleListEntries)
	r.Get("/api/yellow-books/{id}", s.handleGetEntry)
	r.Put("/api/yellow-books/{id}", s.handleUpdateEntry)
	r.Delete("/api/yellow-books/{id}", s.handleDeleteEntry)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// --- Search ---

type searchRequest struct {
	Query    string `json:"query"`
	Limit    int    `json:"limit,omitempty"`
	UseCache *bool  `json:"useCache,omitempty"`
}

type searchResultResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Summary    string  `json:"summary"`
	Similarity float64 `json:"similarity"`
	Rank       int     `json:"rank"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	useCache := body.UseCache == nil || *body.UseCache

	req, err := request.New(body.Query, body.Limit, useCache, s.limits)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	results, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := make([]searchResultResponse, len(results))
	for i, res := range results {
		resp[i] = searchResultResponse{
			ID:         res.ID(),
			Name:       res.Name(),
			Summary:    res.Summary(),
			Similarity: res.Similarity(),
			Rank:       res.Rank(),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleDeleteCache(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	if query != "" {
		if err := s.search.InvalidateCache(r.Context(), query); err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Cache cleared for query: " + query})
		return
	}

	if _, err := s.search.ClearAllCache(r.Context()); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "All cache cleared"})
}

// --- Entries ---

type entryRequest struct {
	Name        string `json:"name"`
	ShortName   string `json:"shortName,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	District    string `json:"district,omitempty"`
	Province    string `json:"province,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Website     string `json:"website,omitempty"`
}

type entryResponse struct {
	entryRequest
	ID         string `json:"id"`
	Embedded   bool   `json:"embedded"`
	EmbeddedAt string `json:"embeddedAt,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func (req entryRequest) toParams() domentry.Params {
	return domentry.Params{
		Name:        req.Name,
		ShortName:   req.ShortName,
		Summary:     req.Summary,
		Description: req.Description,
		Category:    req.Category,
		District:    req.District,
		Province:    req.Province,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Website:     req.Website,
	}
}

func entryToResponse(e domentry.Entry) entryResponse {
	p := e.Params()
	resp := entryResponse{
		entryRequest: entryRequest{
			Name:        p.Name,
			ShortName:   p.ShortName,
			Summary:     p.Summary,
			Description: p.Description,
			Category:    p.Category,
			District:    p.District,
			Province:    p.Province,
			Phone:       p.Phone,
			Email:       p.Email,
			Address:     p.Address,
			Website:     p.Website,
		},
		ID:        e.ID(),
		Embedded:  e.IsEmbedded(),
		CreatedAt: e.CreatedAt().Format(timeLayout),
		UpdatedAt: e.UpdatedAt().Format(timeLayout),
	}
	if at := e.EmbeddedAt(); at != nil {
		resp.EmbeddedAt = at.Format(timeLayout)
	}
	return resp
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var body entryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "Entry name is required")
		return
	}

	e, err := s.entries.Create(r.Context(), body.toParams())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryToResponse(e))
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.entries.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]entryResponse, len(entries))
	for i, e := range entries {
		items[i] = entryToResponse(e)
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.entries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	var body entryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "Entry name is required")
		return
	}

	e, err := s.entries.Update(r.Context(), chi.URLParam(r, "id"), body.toParams())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.entries.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Health ---

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// --- Helpers ---

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleDomainError maps domain sentinels to HTTP statuses. Unknown errors
// become an opaque 500 so internal details never leak to clients. Logging
// goes through the request-scoped logger so lines carry the request id.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	for _, m := range s.mappings {
		if errors.Is(err, m.sentinel) {
			status := m.status
			msg := m.sentinel.Error()
			if status < http.StatusInternalServerError {
				// Client errors carry the full message; they describe the request.
				msg = err.Error()
			}
			log.Warn("Request failed", zap.String("code", m.code), zap.Error(err))
			writeError(w, status, m.code, msg)
			return
		}
	}

	log.Error("Unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
