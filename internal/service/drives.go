package service

import (
	"context"
	"fmt"
	"log/slog"
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
	"golang.org/x/sync/errgroup"
)

type driveService struct {
	driveRepo     repositories.DriveRepository
	managerRepo   repositories.ManagerRepository
	provider      remote.Provider
	settings      *config.HierarchySettings
	remoteTimeout time.Duration
	logger        *slog.Logger
}

// NewDriveService creates a new drive service
func NewDriveService(
	driveRepo repositories.DriveRepository,
	managerRepo repositories.ManagerRepository,
	provider remote.Provider,
	settings *config.HierarchySettings,
	remoteTimeout time.Duration,
	logger *slog.Logger,
) services.DriveService {
	return &driveService{
		driveRepo:     driveRepo,
		managerRepo:   managerRepo,
		provider:      provider,
		settings:      settings,
		remoteTimeout: remoteTimeout,
		logger:        logger,
	}
}

// ListDrives returns the flat, name-ordered mirror view
func (s *driveService) ListDrives(ctx context.Context) ([]models.Drive, error) {
	return s.driveRepo.List(ctx)
}

// DriveHierarchy materializes the nominal hierarchy of all mirrored
// drives carrying the reserved delimiter
func (s *driveService) DriveHierarchy(ctx context.Context) (*services.DriveForest, error) {
	drives, err := s.driveRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	roots, conflicts := hierarchy.MaterializeDriveHierarchy(drives, hierarchy.Options{
		Delimiter:     s.settings.Delimiter,
		PathSeparator: s.settings.PathSeparator,
	})

	if len(conflicts) > 0 {
		s.logger.Warn("drive hierarchy has path conflicts", "count", len(conflicts))
	}

	return &services.DriveForest{Roots: roots, Conflicts: conflicts}, nil
}

// ListManagers returns the mirrored manager grants of a drive
func (s *driveService) ListManagers(ctx context.Context, driveID string) ([]models.ManagerGrant, error) {
	if driveID == "" {
		return nil, &domain.ValidationError{Message: "drive ID is required"}
	}
	return s.managerRepo.ListByDrive(ctx, driveID)
}

// CreateDrive runs the creation sequence: remote create, independent
// permission grants, mirror write. The remote create must succeed
// before anything else is attempted, because the mirror must never
// reference an identifier that does not exist remotely.
func (s *driveService) CreateDrive(ctx context.Context, req *services.CreateDriveRequest) (*services.DriveCreationResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	managers := make([]string, 0, len(req.Managers))
	for _, email := range req.Managers {
		if trimmed := strings.TrimSpace(email); trimmed != "" {
			managers = append(managers, trimmed)
		}
	}

	// Remote create. Failure here is terminal for the whole request.
	callCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	info, err := s.provider.CreateDrive(callCtx, req.Name)
	cancel()
	if err != nil {
		return nil, err
	}

	result := &services.DriveCreationResult{
		Drive: &models.Drive{
			ID:           info.ID,
			Name:         info.Name,
			Hidden:       info.Hidden,
			Restrictions: info.Restrictions,
			Capabilities: info.Capabilities,
			CreatedTime:  info.CreatedTime,
		},
		Applied: []services.AppliedManager{},
		Skipped: []services.SkippedManager{},
	}

	// Grants are independent of each other: one failure neither aborts
	// the others nor the overall request.
	type grantOutcome struct {
		permissionID string
		err          error
	}
	outcomes := make([]grantOutcome, len(managers))

	g, grantCtx := errgroup.WithContext(ctx)
	for i, email := range managers {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(grantCtx, s.remoteTimeout)
			defer cancel()

			perm, err := s.provider.GrantManager(callCtx, info.ID, email)
			if err != nil {
				outcomes[i] = grantOutcome{err: err}
				return nil
			}
			outcomes[i] = grantOutcome{permissionID: perm.ID}
			return nil
		})
	}
	_ = g.Wait()

	grants := make([]models.ManagerGrant, 0, len(managers))
	for i, email := range managers {
		if outcomes[i].err != nil {
			s.logger.Warn("manager grant failed",
				"drive_id", info.ID,
				"email", email,
				"error", outcomes[i].err,
			)
			result.Skipped = append(result.Skipped, services.SkippedManager{
				Email:  email,
				Reason: outcomes[i].err.Error(),
			})
			continue
		}
		result.Applied = append(result.Applied, services.AppliedManager{
			Email:        email,
			PermissionID: outcomes[i].permissionID,
		})
		grants = append(grants, models.ManagerGrant{
			Email:        email,
			Role:         models.ManagerRole,
			Type:         models.ManagerType,
			PermissionID: outcomes[i].permissionID,
		})
	}

	// Mirror write. A failure here means the drive exists remotely but
	// is invisible to the mirror; the response flags the divergence
	// instead of claiming failure, keeping the real remote ID visible
	// for a later reconciliation sweep.
	if err := s.driveRepo.InsertCreated(ctx, result.Drive, grants); err != nil {
		s.logger.Error("mirror write failed after remote create",
			"drive_id", info.ID,
			"error", err,
		)
		result.Mirrored = false
		result.MirrorError = (&domain.MirrorWriteError{
			Message: fmt.Sprintf("drive %s exists remotely but could not be mirrored", info.ID),
			Cause:   err,
		}).Error()
		return result, nil
	}

	result.Mirrored = true
	s.logger.Info("shared drive created",
		"drive_id", info.ID,
		"name", info.Name,
		"applied_managers", len(result.Applied),
		"skipped_managers", len(result.Skipped),
	)

	return result, nil
}

// validateCreateRequest validates a drive creation request. Manager
// email syntax is deliberately not validated here: the remote provider
// is authoritative on which addresses it can grant to, and a rejected
// grant surfaces as a skipped manager rather than a failed request.
func (s *driveService) validateCreateRequest(req *services.CreateDriveRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxDriveNameLength),
		),
	)
}
