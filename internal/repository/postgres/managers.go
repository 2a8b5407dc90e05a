package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivehub/internal/domain/models"
	"drivehub/internal/domain/repositories"
)

// PostgresManagerRepository implements the ManagerRepository interface
type PostgresManagerRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewManagerRepository creates a new manager repository
func NewManagerRepository(config *RepositoryConfig) repositories.ManagerRepository {
	return &PostgresManagerRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByDrive retrieves the manager grants of a drive
func (r *PostgresManagerRepository) ListByDrive(ctx context.Context, driveID string) ([]models.ManagerGrant, error) {
	query := fmt.Sprintf(`
		SELECT id, drive_id, drive_name, email, role, type, permission_id, created_at
		FROM %s
		WHERE drive_id = $1
		ORDER BY email
	`, r.tables.DriveManagers)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, driveID)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	var managers []models.ManagerGrant
	for rows.Next() {
		var m models.ManagerGrant
		var permissionID pgtype.Text
		err := rows.Scan(
			&m.ID,
			&m.DriveID,
			&m.DriveName,
			&m.Email,
			&m.Role,
			&m.Type,
			&permissionID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		m.PermissionID = textValue(permissionID)
		managers = append(managers, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}

	return managers, nil
}
