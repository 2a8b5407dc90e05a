package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"drivehub/internal/config"
	"drivehub/internal/domain"
	"drivehub/internal/domain/models"
	"drivehub/internal/domain/repositories"
	"drivehub/internal/domain/services"
	"drivehub/internal/hierarchy"
	"drivehub/internal/remote"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// unknownPath is the fallback when the remote ancestor walk fails. The
// folder is still created and mirrored; the sweep recomputes paths later.
const unknownPath = "/unknown"

type folderService struct {
	folderRepo    repositories.FolderRepository
	provider      remote.Provider
	settings      *config.HierarchySettings
	remoteTimeout time.Duration
	logger        *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	provider remote.Provider,
	settings *config.HierarchySettings,
	remoteTimeout time.Duration,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo:    folderRepo,
		provider:      provider,
		settings:      settings,
		remoteTimeout: remoteTimeout,
		logger:        logger,
	}
}

// FolderTree materializes the mirrored folders of a drive into a forest
func (s *folderService) FolderTree(ctx context.Context, driveID string) ([]*hierarchy.FolderNode, error) {
	if driveID == "" {
		return nil, &domain.ValidationError{Message: "drive ID is required"}
	}

	folders, err := s.folderRepo.ListByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}

	tree := hierarchy.MaterializeFolderTree(folders)

	s.logger.Debug("folder tree built",
		"drive_id", driveID,
		"folder_count", len(folders),
		"root_count", len(tree),
	)

	return tree, nil
}

// CreateFolder creates the folder remotely, derives its full path by
// walking the remote parent chain, and mirrors it. Path derivation is
// O(depth) remote calls and is the latency-critical part of the flow.
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*services.FolderCreationResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Remote create first; the mirror must never hold an id the
	// provider has not assigned.
	callCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	info, err := s.provider.CreateFolder(callCtx, req.Name, req.DriveID, req.ParentID)
	cancel()
	if err != nil {
		return nil, err
	}

	fullPath, err := s.buildFolderPath(ctx, info.ID, req.DriveID)
	if err != nil {
		s.logger.Warn("failed to build folder path",
			"folder_id", info.ID,
			"drive_id", req.DriveID,
			"error", err,
		)
		fullPath = unknownPath
	}

	result := &services.FolderCreationResult{
		Folder: &models.Folder{
			ID:       info.ID,
			Name:     info.Name,
			ParentID: req.ParentID,
			DriveID:  req.DriveID,
			FullPath: fullPath,
		},
	}

	if err := s.folderRepo.InsertCreated(ctx, result.Folder); err != nil {
		s.logger.Error("mirror write failed after remote create",
			"folder_id", info.ID,
			"error", err,
		)
		result.Mirrored = false
		result.MirrorError = (&domain.MirrorWriteError{
			Message: fmt.Sprintf("folder %s exists remotely but could not be mirrored", info.ID),
			Cause:   err,
		}).Error()
		return result, nil
	}

	result.Mirrored = true
	s.logger.Info("folder created",
		"folder_id", info.ID,
		"name", info.Name,
		"drive_id", req.DriveID,
		"full_path", fullPath,
	)

	return result, nil
}

// buildFolderPath walks the remote parent chain from the folder up to
// (but excluding) the owning drive, collecting names root-to-leaf. Each
// level is one remote metadata round trip. The walk is bounded by the
// configured ancestor depth and a visited set, so a provider returning
// a cycle fails the walk instead of looping forever.
func (s *folderService) buildFolderPath(ctx context.Context, folderID, driveID string) (string, error) {
	var parts []string
	visited := make(map[string]bool)
	currentID := folderID

	for currentID != "" && currentID != driveID {
		if visited[currentID] {
			return "", fmt.Errorf("ancestor chain of %s revisits %s", folderID, currentID)
		}
		if len(visited) >= s.settings.MaxAncestorDepth {
			return "", fmt.Errorf("ancestor chain of %s exceeds depth %d", folderID, s.settings.MaxAncestorDepth)
		}
		visited[currentID] = true

		callCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
		meta, err := s.provider.GetMetadata(callCtx, currentID)
		cancel()
		if err != nil {
			return "", err
		}

		parts = append([]string{meta.Name}, parts...)
		if len(meta.Parents) == 0 {
			break
		}
		currentID = meta.Parents[0]
	}

	return "/" + strings.Join(parts, "/"), nil
}

// validateCreateRequest validates a folder creation request
func (s *folderService) validateCreateRequest(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DriveID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			validation.Match(regexp.MustCompile(`^[^/]+$`)).Error("folder name cannot contain slashes"),
		),
	)
}
