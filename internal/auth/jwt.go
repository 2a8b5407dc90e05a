package auth

import (
	"errors"
	"log/slog"
	"time"

	"drivehub/internal/domain"
	"drivehub/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// HMACTokenService implements TokenService with HS256 signatures over a
// shared secret. Tokens are self-issued; no external key set is
// involved.
type HMACTokenService struct {
	secret []byte
	logger *slog.Logger
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, logger *slog.Logger) (*HMACTokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &HMACTokenService{
		secret: []byte(secret),
		logger: logger,
	}, nil
}

// Mint issues a signed session token for an authenticated user.
func (s *HMACTokenService) Mint(user *models.UserInfo, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates a session token and extracts its claims.
func (s *HMACTokenService) Verify(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks - only HS256 is accepted
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		s.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok {
		s.logger.Error("failed to extract claims from token")
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		s.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
