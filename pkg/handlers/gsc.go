package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/audit"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/logging"
)

// GSCStatusClient fetches Google Search Console connection state from the
// ranking backend.
type GSCStatusClient interface {
	GSCStatus(ctx context.Context, email string) (json.RawMessage, error)
}

// GSCHandler handles the Google Search Console integration endpoints:
// a status proxy and the OAuth callback redirect.
type GSCHandler struct {
	resolver auth.SessionResolver
	client   GSCStatusClient
	auditor  *audit.SecurityAuditor
	logger   *zap.Logger
}

// NewGSCHandler creates a GSCHandler.
func NewGSCHandler(resolver auth.SessionResolver, client GSCStatusClient, auditor *audit.SecurityAuditor, logger *zap.Logger) *GSCHandler {
	return &GSCHandler{resolver: resolver, client: client, auditor: auditor, logger: logger}
}

// RegisterRoutes registers the GSC routes on the given mux.
func (h *GSCHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/gsc/status", h.Status)
	mux.HandleFunc("GET /api/gsc/callback", h.Callback)
}

// Status handles GET /api/gsc/status. Requires a session with an email;
// forwards the query to the ranking backend and relays its JSON verbatim.
func (h *GSCHandler) Status(w http.ResponseWriter, r *http.Request) {
	session, ok := h.resolver.Resolve(r)
	if !ok || session.Email == "" {
		if err := ErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	body, err := h.client.GSCStatus(r.Context(), session.Email)
	if err != nil {
		h.logger.Error("GSC status lookup failed",
			zap.String("email", logging.RedactEmail(session.Email)),
			zap.String("error", logging.SanitizeError(err)))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to fetch GSC status"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		h.logger.Error("Failed to relay GSC status response", zap.Error(err))
	}
}

// Callback handles GET /api/gsc/callback?email=, the redirect target of the
// backend's OAuth flow. An absent email redirects to the dashboard with a
// failure indicator; otherwise to the connected state.
//
// The email parameter is trusted as-is: nothing proves the redirect came
// from the backend. Every acceptance is recorded in the security audit log.
// TODO: require a signed state parameter from the backend and verify it
// here before marking the account connected.
func (h *GSCHandler) Callback(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Redirect(w, r, "/dashboard?gsc=error", http.StatusFound)
		return
	}

	h.auditor.LogUnverifiedCallback(r.Context(), r.URL.Path, r.RemoteAddr)
	h.logger.Info("GSC account connected",
		zap.String("email", logging.RedactEmail(email)))

	http.Redirect(w, r, "/dashboard?gsc=connected", http.StatusFound)
}
