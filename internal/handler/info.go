package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"drivehub/internal/config"
	"drivehub/internal/domain/services"
	"drivehub/internal/httputil"
)

// InfoHandler serves the session, server info and sync history endpoints
type InfoHandler struct {
	syncService services.SyncService
	cfg         *config.Config
	logger      *slog.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(syncService services.SyncService, cfg *config.Config, logger *slog.Logger) *InfoHandler {
	return &InfoHandler{
		syncService: syncService,
		cfg:         cfg,
		logger:      logger,
	}
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *InfoHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now(),
	})
}

// GetUser returns the authenticated user's session identity
// GET /api/user
func (h *InfoHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	session := httputil.GetSession(r)
	if session == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "No active session")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"id":      session.Subject,
		"email":   session.Email,
		"name":    session.Name,
		"picture": session.Picture,
	})
}

// GetInfo returns server identity and environment
// GET /api/info
func (h *InfoHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"name":        config.ServerName,
		"version":     config.ServerVersion,
		"environment": h.cfg.Environment,
	})
}

// GetSyncHistory returns the most recent mirror sync runs
// GET /api/sync-history?limit=N
func (h *InfoHandler) GetSyncHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = n
	}

	runs, err := h.syncService.History(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, runs)
}
