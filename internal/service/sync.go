package service

import (
	"context"
	"log/slog"

	"drivehub/internal/domain/models"
	"drivehub/internal/domain/repositories"
	"drivehub/internal/domain/services"
)

type syncService struct {
	syncRepo repositories.SyncHistoryRepository
	logger   *slog.Logger
}

// NewSyncService creates a new sync history service
func NewSyncService(syncRepo repositories.SyncHistoryRepository, logger *slog.Logger) services.SyncService {
	return &syncService{
		syncRepo: syncRepo,
		logger:   logger,
	}
}

// History returns the most recent synchronization runs
func (s *syncService) History(ctx context.Context, limit int) ([]models.SyncRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.syncRepo.Latest(ctx, limit)
}
