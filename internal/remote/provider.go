// Package remote abstracts the privileged file-storage provider where
// real creation happens. The mirror must never reference an identifier
// the provider has not assigned, so every creation flow starts here.
package remote

import (
	"context"
	"time"
)

// DriveInfo is the provider's view of a newly created shared drive.
type DriveInfo struct {
	ID           string
	Name         string
	Hidden       bool
	Restrictions map[string]any
	Capabilities map[string]any
	CreatedTime  time.Time
}

// FolderInfo is the provider's view of a newly created folder.
type FolderInfo struct {
	ID      string
	Name    string
	Parents []string
}

// Metadata is the subset of file metadata needed to walk parent chains.
type Metadata struct {
	Name    string
	Parents []string
}

// Permission is a granted permission's identifier.
type Permission struct {
	ID string
}

// Provider is the remote file-storage capability. Every call may fail
// independently; callers decide what is retried, what is best-effort,
// and what aborts the request.
type Provider interface {
	// CreateDrive creates a shared drive with the given display name.
	CreateDrive(ctx context.Context, name string) (*DriveInfo, error)

	// GrantManager grants organizer access on a drive to the given
	// email address.
	GrantManager(ctx context.Context, driveID, email string) (*Permission, error)

	// CreateFolder creates a folder inside a drive. A nil parentID
	// places the folder at the drive root.
	CreateFolder(ctx context.Context, name, driveID string, parentID *string) (*FolderInfo, error)

	// GetMetadata fetches the name and parent references of a file or
	// folder, used to walk ancestor chains.
	GetMetadata(ctx context.Context, fileID string) (*Metadata, error)
}
