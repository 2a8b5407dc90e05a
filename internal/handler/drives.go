package handler

import (
	"log/slog"
	"net/http"

	"drivehub/internal/domain/services"
	"drivehub/internal/httputil"
)

// DriveHandler handles shared drive HTTP requests
type DriveHandler struct {
	driveService services.DriveService
	logger       *slog.Logger
}

// NewDriveHandler creates a new drive handler
func NewDriveHandler(driveService services.DriveService, logger *slog.Logger) *DriveHandler {
	return &DriveHandler{
		driveService: driveService,
		logger:       logger,
	}
}

// ListDrives returns all mirrored shared drives as a flat list
// GET /api/shared-drives
func (h *DriveHandler) ListDrives(w http.ResponseWriter, r *http.Request) {
	drives, err := h.driveService.ListDrives(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, drives)
}

// GetDriveTree returns the delimiter-derived drive hierarchy
// GET /api/shared-drives/tree
func (h *DriveHandler) GetDriveTree(w http.ResponseWriter, r *http.Request) {
	forest, err := h.driveService.DriveHierarchy(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, forest)
}

// CreateDrive provisions a shared drive with manager grants
// POST /api/shared-drives
// Returns 201 with grant outcomes; mirror divergence is reported in the body
func (h *DriveHandler) CreateDrive(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDriveRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session := httputil.GetSession(r)
	if session != nil {
		h.logger.Info("drive creation requested", "name", req.Name, "user", session.Email)
	}

	result, err := h.driveService.CreateDrive(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}

// ListManagers returns the mirrored manager grants for a drive
// GET /api/shared-drives/{driveId}/managers
func (h *DriveHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	driveID := r.PathValue("driveId")
	if driveID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Drive ID is required")
		return
	}

	managers, err := h.driveService.ListManagers(r.Context(), driveID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, managers)
}
