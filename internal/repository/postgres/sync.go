package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivehub/internal/domain/models"
	"drivehub/internal/domain/repositories"
)

// PostgresSyncHistoryRepository implements the SyncHistoryRepository
// interface. Read-only here: rows are written by the external sweep.
type PostgresSyncHistoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSyncHistoryRepository creates a new sync history repository
func NewSyncHistoryRepository(config *RepositoryConfig) repositories.SyncHistoryRepository {
	return &PostgresSyncHistoryRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Latest retrieves the most recent sync runs, newest first
func (r *PostgresSyncHistoryRepository) Latest(ctx context.Context, limit int) ([]models.SyncRun, error) {
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT id, sync_date, drive_count, folder_count, status, error_message, duration_ms
		FROM %s
		ORDER BY sync_date DESC
		LIMIT $1
	`, r.tables.SyncHistory)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync history: %w", err)
	}
	defer rows.Close()

	var runs []models.SyncRun
	for rows.Next() {
		var run models.SyncRun
		var errorMessage pgtype.Text
		err := rows.Scan(
			&run.ID,
			&run.SyncDate,
			&run.DriveCount,
			&run.FolderCount,
			&run.Status,
			&errorMessage,
			&run.DurationMS,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		run.ErrorMessage = textValue(errorMessage)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sync history: %w", err)
	}

	return runs, nil
}
