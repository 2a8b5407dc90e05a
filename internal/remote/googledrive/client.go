// Package googledrive implements the remote provider against the Google
// Drive v3 API using service-account credentials with domain-wide
// delegation.
package googledrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"drivehub/internal/domain"
	"drivehub/internal/remote"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client implements remote.Provider on top of the Drive v3 API.
type Client struct {
	svc    *drive.Service
	logger *slog.Logger
}

// New creates a Drive client from service-account credentials JSON.
func New(ctx context.Context, credentialsJSON string, logger *slog.Logger) (*Client, error) {
	if credentialsJSON == "" {
		return nil, errors.New("service account credentials are not configured")
	}

	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Client{svc: svc, logger: logger}, nil
}

// CreateDrive creates a shared drive. The request ID makes the remote
// call idempotent against transport-level retries.
func (c *Client) CreateDrive(ctx context.Context, name string) (*remote.DriveInfo, error) {
	requestID := fmt.Sprintf("create-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])

	created, err := c.svc.Drives.Create(requestID, &drive.Drive{Name: name}).
		Context(ctx).Do()
	if err != nil {
		return nil, mapError("create shared drive", err)
	}

	c.logger.Info("shared drive created", "id", created.Id, "name", created.Name)

	createdTime, _ := time.Parse(time.RFC3339, created.CreatedTime)
	return &remote.DriveInfo{
		ID:           created.Id,
		Name:         created.Name,
		Hidden:       created.Hidden,
		Restrictions: toMap(created.Restrictions),
		Capabilities: toMap(created.Capabilities),
		CreatedTime:  createdTime,
	}, nil
}

// GrantManager grants organizer access on a drive.
func (c *Client) GrantManager(ctx context.Context, driveID, email string) (*remote.Permission, error) {
	perm, err := c.svc.Permissions.Create(driveID, &drive.Permission{
		Role:         "organizer",
		Type:         "user",
		EmailAddress: email,
	}).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return nil, mapError(fmt.Sprintf("grant manager %s", email), err)
	}

	return &remote.Permission{ID: perm.Id}, nil
}

// CreateFolder creates a folder inside a shared drive.
func (c *Client) CreateFolder(ctx context.Context, name, driveID string, parentID *string) (*remote.FolderInfo, error) {
	parent := driveID
	if parentID != nil && *parentID != "" {
		parent = *parentID
	}

	created, err := c.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parent},
		DriveId:  driveID,
	}).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return nil, mapError("create folder", err)
	}

	c.logger.Info("folder created", "id", created.Id, "name", created.Name, "drive_id", driveID)

	return &remote.FolderInfo{
		ID:      created.Id,
		Name:    created.Name,
		Parents: created.Parents,
	}, nil
}

// GetMetadata fetches name and parents of a file.
func (c *Client) GetMetadata(ctx context.Context, fileID string) (*remote.Metadata, error) {
	file, err := c.svc.Files.Get(fileID).
		Fields("name", "parents").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return nil, mapError("get metadata", err)
	}

	return &remote.Metadata{Name: file.Name, Parents: file.Parents}, nil
}

// mapError translates Drive API failures into domain error kinds.
func mapError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.RemoteUnavailableError{Message: fmt.Sprintf("%s: provider call timed out", op)}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return &domain.NotFoundError{Message: fmt.Sprintf("%s: %s", op, apiErr.Message)}
		case http.StatusForbidden, http.StatusUnauthorized:
			return &domain.ForbiddenError{Message: fmt.Sprintf("%s: %s", op, apiErr.Message)}
		case http.StatusBadRequest:
			return &domain.ValidationError{Message: fmt.Sprintf("%s: %s", op, apiErr.Message)}
		}
		if apiErr.Code >= 500 {
			return &domain.RemoteUnavailableError{Message: fmt.Sprintf("%s: provider returned %d", op, apiErr.Code)}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return &domain.RemoteUnavailableError{Message: fmt.Sprintf("%s: %v", op, err)}
}

// toMap flattens a typed API struct into the schemaless shape the
// mirror stores.
func toMap(v any) map[string]any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
