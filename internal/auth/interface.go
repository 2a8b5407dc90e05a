package auth

import (
	"time"

	"drivehub/internal/domain/models"
)

// TokenService mints and verifies the signed session tokens handed to
// the browser after a successful identity-provider login.
type TokenService interface {
	// Mint issues a signed token carrying the user's identity, valid
	// for the given TTL.
	Mint(user *models.UserInfo, ttl time.Duration) (string, error)

	// Verify validates a token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an
	// invalid signature.
	Verify(tokenString string) (*models.SessionClaims, error)
}
