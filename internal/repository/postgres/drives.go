package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivehub/internal/domain"
	"drivehub/internal/domain/models"
	"drivehub/internal/domain/repositories"
)

// PostgresDriveRepository implements the DriveRepository interface
type PostgresDriveRepository struct {
	pool      *pgxpool.Pool
	tables    *TableNames
	txManager repositories.TransactionManager
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(config *RepositoryConfig, txManager repositories.TransactionManager) repositories.DriveRepository {
	return &PostgresDriveRepository{
		pool:      config.Pool,
		tables:    config.Tables,
		txManager: txManager,
	}
}

// List retrieves all mirrored drives, ordered by name
func (r *PostgresDriveRepository) List(ctx context.Context) ([]models.Drive, error) {
	query := fmt.Sprintf(`
		SELECT id, name, hidden, restrictions, capabilities, created_time,
		       created_by_frontend, created_at, updated_at
		FROM %s
		ORDER BY name
	`, r.tables.SharedDrives)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}
	defer rows.Close()

	var drives []models.Drive
	for rows.Next() {
		var drive models.Drive
		var createdTime pgtype.Timestamptz
		err := rows.Scan(
			&drive.ID,
			&drive.Name,
			&drive.Hidden,
			&drive.Restrictions,
			&drive.Capabilities,
			&createdTime,
			&drive.CreatedByFrontend,
			&drive.CreatedAt,
			&drive.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan drive: %w", err)
		}
		drive.CreatedTime = timeValue(createdTime)
		drives = append(drives, drive)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}

	return drives, nil
}

// InsertCreated writes a newly created drive and its manager grants in
// a single transaction. created_by_frontend and the timestamps are
// stamped here, never taken from the caller.
func (r *PostgresDriveRepository) InsertCreated(ctx context.Context, drive *models.Drive, managers []models.ManagerGrant) error {
	now := time.Now()
	drive.CreatedByFrontend = true
	drive.CreatedAt = now
	drive.UpdatedAt = now

	err := r.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		executor := GetExecutor(txCtx, r.pool)

		driveQuery := fmt.Sprintf(`
			INSERT INTO %s (id, name, hidden, restrictions, capabilities, created_time,
			                created_by_frontend, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, r.tables.SharedDrives)

		_, err := executor.Exec(txCtx, driveQuery,
			drive.ID,
			drive.Name,
			drive.Hidden,
			drive.Restrictions,
			drive.Capabilities,
			drive.CreatedTime,
			drive.CreatedByFrontend,
			drive.CreatedAt,
			drive.UpdatedAt,
		)
		if err != nil {
			if IsPgDuplicateError(err) {
				return &domain.ConflictError{
					Message:      fmt.Sprintf("drive %q is already mirrored", drive.Name),
					ResourceType: "drive",
					ResourceID:   drive.ID,
				}
			}
			return fmt.Errorf("insert drive: %w", err)
		}

		managerQuery := fmt.Sprintf(`
			INSERT INTO %s (id, drive_id, drive_name, email, role, type, permission_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, r.tables.DriveManagers)

		for i := range managers {
			managers[i].ID = uuid.NewString()
			managers[i].DriveID = drive.ID
			managers[i].DriveName = drive.Name
			managers[i].CreatedAt = now

			_, err := executor.Exec(txCtx, managerQuery,
				managers[i].ID,
				managers[i].DriveID,
				managers[i].DriveName,
				managers[i].Email,
				managers[i].Role,
				managers[i].Type,
				managers[i].PermissionID,
				managers[i].CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert manager grant for %s: %w", managers[i].Email, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
