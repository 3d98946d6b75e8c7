package middleware

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
)

// protectedPrefixes are the page areas that require a resolved session.
var protectedPrefixes = []string{
	"/dashboard",
	"/history",
	"/saved-searches",
}

// skipPattern matches requests the gate must never intercept: API routes,
// asset prefixes, well-known site files, and static file extensions.
var skipPattern = regexp.MustCompile(
	`^/(?:api/|static/|assets/|favicon\.ico$|sitemap\.xml$|robots\.txt$)` +
		`|\.(?:png|jpg|jpeg|gif|svg|ico|webp|css|js|mjs|map|woff|woff2|ttf|otf)$`,
)

// IsProtected reports whether a path belongs to a session-gated page area.
func IsProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// RouteGate redirects unauthenticated requests to protected page areas to
// the sign-in location, carrying the original path as callbackUrl. It never
// fails the pipeline: if the resolver misbehaves, the request is treated as
// unauthenticated (fail closed). Resolved sessions are placed in the request
// context for downstream handlers.
func RouteGate(resolver auth.SessionResolver, signInPath string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if skipPattern.MatchString(path) {
				next.ServeHTTP(w, r)
				return
			}

			session, ok := resolveSafe(resolver, r, logger)
			if ok {
				r = r.WithContext(auth.WithSession(r.Context(), session))
			}

			if IsProtected(path) && !ok {
				target := signInPath + "?callbackUrl=" + url.QueryEscape(path)
				logger.Debug("Redirecting unauthenticated request",
					zap.String("path", path))
				http.Redirect(w, r, target, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveSafe wraps resolver.Resolve so a panicking resolver reads as
// "no session" instead of taking down the request.
func resolveSafe(resolver auth.SessionResolver, r *http.Request, logger *zap.Logger) (session *auth.Session, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Session resolver panicked, treating as unauthenticated",
				zap.Any("panic", rec),
				zap.String("path", r.URL.Path))
			session, ok = nil, false
		}
	}()
	return resolver.Resolve(r)
}
