package services

import (
	"context"

	"drivehub/internal/domain/models"
	"drivehub/internal/hierarchy"
)

// CreateFolderRequest is the payload for creating a folder inside a
// shared drive. ParentID nil or empty means the drive root.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	DriveID  string  `json:"-"`
	ParentID *string `json:"parentId"`
}

// FolderCreationResult reports the outcome of a folder creation with
// the same divergence semantics as DriveCreationResult.
type FolderCreationResult struct {
	Folder      *models.Folder `json:"folder"`
	Mirrored    bool           `json:"mirrored"`
	MirrorError string         `json:"mirror_error,omitempty"`
}

// FolderService defines folder operations.
type FolderService interface {
	// FolderTree materializes the mirrored folders of a drive into a
	// forest keyed by parent references.
	FolderTree(ctx context.Context, driveID string) ([]*hierarchy.FolderNode, error)

	// CreateFolder creates the folder remotely, derives its full path
	// by walking the remote parent chain, and mirrors it.
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*FolderCreationResult, error)
}
