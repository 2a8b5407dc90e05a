package handler

import (
	"log/slog"
	"net/http"

	"drivehub/internal/domain/services"
	"drivehub/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService services.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService services.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// GetFolderTree returns the nested folder tree of a drive
// GET /api/shared-drives/{driveId}/folders
func (h *FolderHandler) GetFolderTree(w http.ResponseWriter, r *http.Request) {
	driveID := r.PathValue("driveId")
	if driveID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Drive ID is required")
		return
	}

	tree, err := h.folderService.FolderTree(r.Context(), driveID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// CreateFolder creates a folder in a drive and mirrors it
// POST /api/shared-drives/{driveId}/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	driveID := r.PathValue("driveId")
	if driveID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Drive ID is required")
		return
	}

	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.DriveID = driveID

	result, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}
