package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the signed session token minted after
// a successful identity-provider login. The subject claim carries the
// provider-assigned user ID.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *SessionClaims) GetUserID() string {
	return c.Subject
}

// UserInfo is the identity-provider view of an authenticated user.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture,omitempty"`
	VerifiedEmail bool   `json:"verified_email"`
}
