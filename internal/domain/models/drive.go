package models

import "time"

// Drive mirrors a shared drive record from the remote provider.
// Rows are immutable after insert except for updated_at, which the
// synchronization sweep touches.
type Drive struct {
	ID                string         `json:"id" db:"id"`
	Name              string         `json:"name" db:"name"`
	Hidden            bool           `json:"hidden" db:"hidden"`
	Restrictions      map[string]any `json:"restrictions,omitempty" db:"restrictions"`
	Capabilities      map[string]any `json:"capabilities,omitempty" db:"capabilities"`
	CreatedTime       time.Time      `json:"createdTime" db:"created_time"`
	CreatedByFrontend bool           `json:"created_by_frontend" db:"created_by_frontend"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`
}

// ManagerGrant is an organizer permission on a shared drive. A grant is
// meaningless without its drive and is never written standalone: it only
// lands inside the same transaction as its drive row.
type ManagerGrant struct {
	ID           string    `json:"id" db:"id"`
	DriveID      string    `json:"driveId" db:"drive_id"`
	DriveName    string    `json:"driveName" db:"drive_name"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	Type         string    `json:"type" db:"type"`
	PermissionID string    `json:"permissionId" db:"permission_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Manager grant constants matching the remote provider's permission model
const (
	ManagerRole = "organizer"
	ManagerType = "user"
)
