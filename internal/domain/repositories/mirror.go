package repositories

import (
	"context"

	"drivehub/internal/domain/models"
)

// DriveRepository reads and writes the shared-drive side of the mirror.
type DriveRepository interface {
	// List returns every mirrored drive, ordered by name.
	List(ctx context.Context) ([]models.Drive, error)

	// InsertCreated writes a newly created drive together with its
	// manager grants. The write is atomic: either the drive row and
	// every grant row land, or none do. The repository stamps
	// created_by_frontend and the server-side timestamps; it performs
	// no retries.
	InsertCreated(ctx context.Context, drive *models.Drive, managers []models.ManagerGrant) error
}

// FolderRepository reads and writes the folder side of the mirror.
type FolderRepository interface {
	// ListByDrive returns every mirrored folder of a drive, ordered by
	// full_path ascending with ties broken by id. The materializer
	// relies on this ordering for stable sibling placement.
	ListByDrive(ctx context.Context, driveID string) ([]models.Folder, error)

	// InsertCreated writes a newly created folder. Single-row write,
	// same stamping rules as InsertCreated on DriveRepository.
	InsertCreated(ctx context.Context, folder *models.Folder) error
}

// ManagerRepository reads manager grants from the mirror.
type ManagerRepository interface {
	ListByDrive(ctx context.Context, driveID string) ([]models.ManagerGrant, error)
}

// SyncHistoryRepository reads the synchronization sweep history. Rows
// are written by the external sweep, never by this service.
type SyncHistoryRepository interface {
	Latest(ctx context.Context, limit int) ([]models.SyncRun, error)
}
