package auth

import (
	"crypto/sha256"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// SessionResolver determines whether a request carries a valid authenticated
// identity. Absence of a session is a normal outcome, not an error: Resolve
// must never fail the request pipeline, whatever the credentials look like.
type SessionResolver interface {
	// Resolve inspects request credentials and returns the session, or
	// (nil, false) when the request is unauthenticated. Read-only.
	Resolve(r *http.Request) (*Session, bool)
}

// Resolver implements SessionResolver. It checks credentials in order:
//  1. Signed session cookie (browser clients)
//  2. Authorization header with "Bearer" scheme (API clients), an HS256
//     token signed with the same secret as the cookie store
type Resolver struct {
	store      *sessions.CookieStore
	signingKey []byte
	logger     *zap.Logger
}

var _ SessionResolver = (*Resolver)(nil)

// NewResolver creates a Resolver backed by a signed cookie store.
func NewResolver(secret string, settings CookieSettings, logger *zap.Logger) *Resolver {
	key := sha256.Sum256([]byte(secret))
	return &Resolver{
		store:      NewCookieStore(secret, settings),
		signingKey: key[:],
		logger:     logger,
	}
}

// Resolve inspects the request's credentials.
func (r *Resolver) Resolve(req *http.Request) (*Session, bool) {
	// Try cookie first (browser clients)
	if sess, err := r.store.Get(req, SessionName); err == nil && !sess.IsNew {
		if identity := sessionFromValues(sess.Values); identity != nil {
			return identity, true
		}
	}

	// Fallback to Authorization header (API clients)
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		r.logger.Debug("Invalid Authorization header format",
			zap.String("path", req.URL.Path))
		return nil, false
	}

	claims, err := r.parseToken(parts[1])
	if err != nil {
		r.logger.Debug("Bearer token rejected",
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return nil, false
	}

	return &Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		AvatarURL: claims.Picture,
	}, true
}

// parseToken validates an HS256 session token and returns its claims.
func (r *Resolver) parseToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return r.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
