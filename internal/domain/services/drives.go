package services

import (
	"context"

	"drivehub/internal/domain/models"
	"drivehub/internal/hierarchy"
)

// CreateDriveRequest is the payload for creating a shared drive.
type CreateDriveRequest struct {
	Name     string   `json:"name"`
	Managers []string `json:"managers"`
}

// AppliedManager is a manager email whose permission grant succeeded.
type AppliedManager struct {
	Email        string `json:"email"`
	PermissionID string `json:"permissionId"`
}

// SkippedManager is a manager email whose permission grant failed. The
// grant failure never aborts the overall request.
type SkippedManager struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// DriveCreationResult states explicitly which sub-steps of a creation
// request succeeded. Mirrored=false with a populated Drive means the
// remote object exists but is invisible to the mirror; callers must not
// assume mirror and remote agree unless Mirrored is true.
type DriveCreationResult struct {
	Drive       *models.Drive    `json:"drive"`
	Applied     []AppliedManager `json:"appliedManagers"`
	Skipped     []SkippedManager `json:"skippedManagers"`
	Mirrored    bool             `json:"mirrored"`
	MirrorError string           `json:"mirror_error,omitempty"`
}

// DriveForest is the presentation view of the delimiter hierarchy,
// rebuilt per request and never persisted.
type DriveForest struct {
	Roots     []*hierarchy.DriveNode   `json:"roots"`
	Conflicts []hierarchy.PathConflict `json:"conflicts,omitempty"`
}

// DriveService defines shared-drive operations.
type DriveService interface {
	// ListDrives returns the flat, name-ordered mirror view.
	ListDrives(ctx context.Context) ([]models.Drive, error)

	// DriveHierarchy materializes the nominal hierarchy of all drives
	// whose names carry the reserved delimiter.
	DriveHierarchy(ctx context.Context) (*DriveForest, error)

	// CreateDrive runs the full creation sequence: remote create,
	// independent permission grants, mirror write.
	CreateDrive(ctx context.Context, req *CreateDriveRequest) (*DriveCreationResult, error)

	// ListManagers returns the mirrored manager grants of a drive.
	ListManagers(ctx context.Context, driveID string) ([]models.ManagerGrant, error)
}

// SyncService reads the synchronization sweep history.
type SyncService interface {
	History(ctx context.Context, limit int) ([]models.SyncRun, error)
}
