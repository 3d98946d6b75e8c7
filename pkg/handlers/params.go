package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// RequireQueryParam extracts a required query parameter. Returns the value
// and true on success, or empty string and false after writing a 400
// response naming the missing parameter.
func RequireQueryParam(w http.ResponseWriter, r *http.Request, name string, logger *zap.Logger) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "missing_parameter", name+" parameter is required"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// IntQueryParam extracts an optional integer query parameter, falling back
// to def when the parameter is absent, malformed, or outside [min, max].
func IntQueryParam(r *http.Request, name string, def, min, max int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}
