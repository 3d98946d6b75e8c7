package auth

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by a bearer session token.
// Subject holds the user ID.
type SessionClaims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}
