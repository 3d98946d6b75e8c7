package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the name of the signed session cookie.
const SessionName = "seobw_session"

// Session value keys.
const (
	SessionKeyUserID    = "user_id"
	SessionKeyEmail     = "email"
	SessionKeyName      = "name"
	SessionKeyAvatarURL = "avatar_url"
)

// Session is the resolved identity of a request. It is rebuilt from request
// credentials on every request and never mutated.
type Session struct {
	UserID    string `json:"userId,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// NewCookieStore builds the signed cookie store for session resolution.
//
// The secret can be any passphrase - it is SHA-256 hashed to derive a
// 32-byte signing key. It must be consistent across server restarts and
// multiple servers in a load-balanced deployment.
//
// Security settings:
// - HttpOnly: true (inaccessible to JavaScript)
// - Secure/Domain: derived from base URL (see DeriveCookieSettings)
// - SameSite: Lax (cookie survives the OAuth redirect back to us)
func NewCookieStore(secret string, settings CookieSettings) *sessions.CookieStore {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   settings.Domain,
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// sessionFromValues rebuilds a Session from cookie session values.
// Returns nil if the values carry no identity at all.
func sessionFromValues(values map[interface{}]interface{}) *Session {
	s := &Session{}
	if v, ok := values[SessionKeyUserID].(string); ok {
		s.UserID = v
	}
	if v, ok := values[SessionKeyEmail].(string); ok {
		s.Email = v
	}
	if v, ok := values[SessionKeyName].(string); ok {
		s.Name = v
	}
	if v, ok := values[SessionKeyAvatarURL].(string); ok {
		s.AvatarURL = v
	}
	if s.UserID == "" && s.Email == "" {
		return nil
	}
	return s
}
