// Package auth resolves request identity from cookies or bearer tokens and
// provides context helpers so handlers can read the session the gate
// middleware injected.
package auth

import "context"

type contextKey string

// sessionContextKey is where the gate middleware stores the resolved Session.
const sessionContextKey contextKey = "seobw_session"

// WithSession returns a context carrying the resolved session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// GetSession extracts the resolved session from the context.
// Returns (nil, false) for unauthenticated requests.
func GetSession(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*Session)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// GetUserIDFromContext extracts the user ID from the session in the context.
// Returns empty string if not authenticated. Use this when you can handle
// the empty string gracefully.
func GetUserIDFromContext(ctx context.Context) string {
	s, ok := GetSession(ctx)
	if !ok {
		return ""
	}
	return s.UserID
}
