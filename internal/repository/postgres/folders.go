package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"drivehub/internal/domain"
	"drivehub/internal/domain/models"
	"drivehub/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByDrive retrieves all folders of a drive ordered by full_path
// with ties broken by id. The materializer depends on this ordering for
// stable sibling placement.
func (r *PostgresFolderRepository) ListByDrive(ctx context.Context, driveID string) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name, parent_id, drive_id, full_path,
		       created_by_frontend, created_at, updated_at
		FROM %s
		WHERE drive_id = $1
		ORDER BY full_path, id
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, driveID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.Name,
			&folder.ParentID,
			&folder.DriveID,
			&folder.FullPath,
			&folder.CreatedByFrontend,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}

// InsertCreated writes a newly created folder. Single-row write; the
// stamping rules match the drive writer.
func (r *PostgresFolderRepository) InsertCreated(ctx context.Context, folder *models.Folder) error {
	now := time.Now()
	folder.CreatedByFrontend = true
	folder.CreatedAt = now
	folder.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, parent_id, drive_id, full_path,
		                created_by_frontend, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		folder.ID,
		folder.Name,
		folder.ParentID,
		folder.DriveID,
		folder.FullPath,
		folder.CreatedByFrontend,
		folder.CreatedAt,
		folder.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("folder %q is already mirrored", folder.Name),
				ResourceType: "folder",
				ResourceID:   folder.ID,
			}
		}
		return fmt.Errorf("insert folder: %w", err)
	}

	return nil
}
