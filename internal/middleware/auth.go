package middleware

import (
	"net/http"
	"strings"

	"drivehub/internal/auth"
	"drivehub/internal/httputil"
)

// AuthMiddleware verifies the bearer session token on every request and
// stores the claims in the request context. Unauthenticated requests
// are rejected before reaching any handler.
func AuthMiddleware(tokens auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithSession(r, claims))
		})
	}
}
