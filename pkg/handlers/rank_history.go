package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/audit"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/logging"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/models"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/normalize"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/repositories"
	sqlcheck "github.com/seo-bandwagon/SEOBW-home-sub001/pkg/sql"
)

// RankHistoryResponse is the payload of the rank history endpoint.
type RankHistoryResponse struct {
	Keyword string                     `json:"keyword"`
	Domain  string                     `json:"domain"`
	Days    int                        `json:"days"`
	History []*models.RankHistoryPoint `json:"history"`
	Message string                     `json:"message,omitempty"`
}

// RankHistoryHandler serves observed ranking positions for a keyword/domain
// pair. The serp repository may be nil when the store is not provisioned;
// the endpoint then degrades to an empty history rather than failing.
type RankHistoryHandler struct {
	serpRepo repositories.SerpRepository
	auditor  *audit.SecurityAuditor
	logger   *zap.Logger
}

// NewRankHistoryHandler creates a RankHistoryHandler.
func NewRankHistoryHandler(serpRepo repositories.SerpRepository, auditor *audit.SecurityAuditor, logger *zap.Logger) *RankHistoryHandler {
	return &RankHistoryHandler{serpRepo: serpRepo, auditor: auditor, logger: logger}
}

// RegisterRoutes registers the rank tracking routes on the given mux.
func (h *RankHistoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/rank-track/history", h.History)
}

// History handles GET /api/rank-track/history?keyword=&domain=&days=.
func (h *RankHistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	keyword, ok := RequireQueryParam(w, r, "keyword", h.logger)
	if !ok {
		return
	}
	domain, ok := RequireQueryParam(w, r, "domain", h.logger)
	if !ok {
		return
	}
	days := IntQueryParam(r, "days", repositories.DefaultHistoryWindowDays, 1, 365)

	keyword = normalize.Keyword(keyword)
	domain = normalize.Domain(domain)

	// Queries are parameterized; screening is for the audit trail only.
	for _, hit := range sqlcheck.CheckParameters(map[string]string{
		"keyword": keyword,
		"domain":  domain,
	}) {
		h.auditor.LogInjectionAttempt(r.Context(), r.URL.Path, r.RemoteAddr, hit)
	}

	if h.serpRepo == nil {
		response := RankHistoryResponse{
			Keyword: keyword,
			Domain:  domain,
			Days:    days,
			History: []*models.RankHistoryPoint{},
			Message: "rank tracking store is not configured; history is unavailable",
		}
		if err := WriteJSON(w, http.StatusOK, response); err != nil {
			h.logger.Error("Failed to encode rank history response", zap.Error(err))
		}
		return
	}

	points, err := h.serpRepo.History(r.Context(), keyword, domain, days)
	if err != nil {
		h.logger.Error("Failed to load rank history",
			zap.String("keyword", keyword),
			zap.String("domain", domain),
			zap.String("error", logging.SanitizeError(err)))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to load rank history"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := RankHistoryResponse{
		Keyword: keyword,
		Domain:  domain,
		Days:    days,
		History: points,
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode rank history response", zap.Error(err))
	}
}
