package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/logging"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/repositories"
)

// SearchListResponse is the payload of the search history endpoint.
type SearchListResponse struct {
	Searches []*models.Search `json:"searches"`
	Message  string           `json:"message,omitempty"`
}

// SavedSearchListResponse is the payload of the saved searches endpoint.
type SavedSearchListResponse struct {
	SavedSearches []*models.SavedSearch `json:"savedSearches"`
	Message       string                `json:"message,omitempty"`
}

// SearchesHandler serves a user's search history and saved searches.
// The repository may be nil when the store is not provisioned; both
// endpoints then degrade to empty lists.
type SearchesHandler struct {
	resolver   auth.SessionResolver
	searchRepo repositories.SearchRepository
	logger     *zap.Logger
}

// NewSearchesHandler creates a SearchesHandler.
func NewSearchesHandler(resolver auth.SessionResolver, searchRepo repositories.SearchRepository, logger *zap.Logger) *SearchesHandler {
	return &SearchesHandler{resolver: resolver, searchRepo: searchRepo, logger: logger}
}

// RegisterRoutes registers the search listing routes on the given mux.
func (h *SearchesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/searches", h.List)
	mux.HandleFunc("GET /api/saved-searches", h.ListSaved)
}

// List handles GET /api/searches?limit=&offset=.
func (h *SearchesHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if h.searchRepo == nil {
		h.writeJSON(w, SearchListResponse{
			Searches: []*models.Search{},
			Message:  "search store is not configured",
		})
		return
	}

	limit := IntQueryParam(r, "limit", 50, 1, 100)
	offset := IntQueryParam(r, "offset", 0, 0, 1<<20)

	searches, err := h.searchRepo.ListByUser(r.Context(), session.UserID, limit, offset)
	if err != nil {
		h.fail(w, "list searches", err)
		return
	}

	h.writeJSON(w, SearchListResponse{Searches: searches})
}

// ListSaved handles GET /api/saved-searches?limit=.
func (h *SearchesHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if h.searchRepo == nil {
		h.writeJSON(w, SavedSearchListResponse{
			SavedSearches: []*models.SavedSearch{},
			Message:       "search store is not configured",
		})
		return
	}

	limit := IntQueryParam(r, "limit", 50, 1, 100)

	saved, err := h.searchRepo.ListSavedByUser(r.Context(), session.UserID, limit)
	if err != nil {
		h.fail(w, "list saved searches", err)
		return
	}

	h.writeJSON(w, SavedSearchListResponse{SavedSearches: saved})
}

// requireSession resolves the request identity or writes a 401.
// API routes bypass the page gate, so these endpoints check directly.
func (h *SearchesHandler) requireSession(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	session, ok := h.resolver.Resolve(r)
	if !ok || session.UserID == "" {
		if err := ErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return nil, false
	}
	return session, true
}

func (h *SearchesHandler) writeJSON(w http.ResponseWriter, data interface{}) {
	if err := WriteJSON(w, http.StatusOK, data); err != nil {
		h.logger.Error("Failed to encode search response", zap.Error(err))
	}
}

func (h *SearchesHandler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Error("Search listing failed",
		zap.String("operation", op),
		zap.String("error", logging.SanitizeError(err)))
	if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to load searches"); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
