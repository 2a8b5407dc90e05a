package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"drivehub/internal/auth"
	"drivehub/internal/config"
	"drivehub/internal/httputil"
	"drivehub/internal/identity"
)

const stateCookie = "oauth_state"

// AuthHandler handles the OAuth login flow and session endpoints
type AuthHandler struct {
	provider identity.Provider
	tokens   auth.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(provider identity.Provider, tokens auth.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		tokens:   tokens,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login redirects the browser to the provider's consent screen
// GET /auth/google
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth",
		MaxAge:   int(10 * time.Minute / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback completes the OAuth flow, enforces the allowed-domain gate,
// mints a session token and redirects back to the frontend
// GET /auth/google/callback
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.logger.Warn("oauth consent denied", "error", errParam)
		h.redirectWithError(w, r, "access_denied")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid state parameter")
		return
	}
	// Clear the state cookie, it is single use.
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/auth", MaxAge: -1})

	user, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("code exchange failed", "error", err)
		h.redirectWithError(w, r, "exchange_failed")
		return
	}

	if !identity.DomainAllowed(user.Email, h.cfg.AllowedDomains) {
		h.logger.Warn("login rejected for disallowed domain", "email", user.Email)
		h.redirectWithError(w, r, "domain_not_allowed")
		return
	}

	token, err := h.tokens.Mint(user, h.cfg.TokenTTL)
	if err != nil {
		h.logger.Error("token mint failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("user logged in", "email", user.Email)
	http.Redirect(w, r, h.cfg.AppURL+"/app?token="+url.QueryEscape(token), http.StatusTemporaryRedirect)
}

// Logout acknowledges logout. Session tokens are stateless, so the
// client discards the token; nothing is revoked server side.
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) redirectWithError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, h.cfg.AppURL+"/?error="+url.QueryEscape(reason), http.StatusTemporaryRedirect)
}
