package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/logging"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/repositories"
)

// topLinkDomainCount is how many external-link domains the aggregate
// endpoint reports.
const topLinkDomainCount = 20

// WikiAnalysisResponse combines the three wiki-analysis reads into one
// payload. Partial results are never returned: any sub-query failure fails
// the whole request.
type WikiAnalysisResponse struct {
	Pages      []*models.WikiPage        `json:"pages"`
	Aggregates *models.WikiAggregates    `json:"aggregates"`
	TopDomains []*models.DomainFrequency `json:"topDomains"`
}

// WikiAnalysisHandler serves aggregate statistics over the pre-populated
// wiki-analysis cache table. Unlike the rank history endpoint there is no
// meaningful empty fallback, so an unprovisioned store is a server error.
type WikiAnalysisHandler struct {
	wikiRepo repositories.WikiRepository
	logger   *zap.Logger
}

// NewWikiAnalysisHandler creates a WikiAnalysisHandler. wikiRepo may be nil
// when the store is not provisioned.
func NewWikiAnalysisHandler(wikiRepo repositories.WikiRepository, logger *zap.Logger) *WikiAnalysisHandler {
	return &WikiAnalysisHandler{wikiRepo: wikiRepo, logger: logger}
}

// RegisterRoutes registers the wiki analysis routes on the given mux.
func (h *WikiAnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/wiki-analysis", h.Analysis)
}

// Analysis handles GET /api/wiki-analysis.
func (h *WikiAnalysisHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	if h.wikiRepo == nil {
		if err := ErrorResponse(w, http.StatusInternalServerError, "store_not_configured", "Wiki analysis store is not configured"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	ctx := r.Context()

	pages, err := h.wikiRepo.ListPages(ctx)
	if err != nil {
		h.fail(w, "list wiki pages", err)
		return
	}

	aggregates, err := h.wikiRepo.Aggregates(ctx)
	if err != nil {
		h.fail(w, "compute wiki aggregates", err)
		return
	}

	topDomains, err := h.wikiRepo.TopLinkDomains(ctx, topLinkDomainCount)
	if err != nil {
		h.fail(w, "count link domains", err)
		return
	}

	response := WikiAnalysisResponse{
		Pages:      pages,
		Aggregates: aggregates,
		TopDomains: topDomains,
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode wiki analysis response", zap.Error(err))
	}
}

func (h *WikiAnalysisHandler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Error("Wiki analysis query failed",
		zap.String("operation", op),
		zap.String("error", logging.SanitizeError(err)))
	if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to load wiki analysis"); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
