package httputil

import (
	"context"
	"net/http"

	"drivehub/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const sessionKey contextKey = "session"

// WithSession adds the verified session claims to the request context
func WithSession(r *http.Request, claims *models.SessionClaims) *http.Request {
	ctx := context.WithValue(r.Context(), sessionKey, claims)
	return r.WithContext(ctx)
}

// GetSession retrieves the session claims from context, or nil if the
// request is unauthenticated
func GetSession(r *http.Request) *models.SessionClaims {
	claims, _ := r.Context().Value(sessionKey).(*models.SessionClaims)
	return claims
}
