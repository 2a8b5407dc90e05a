package models

import "time"

// Folder mirrors a folder record inside a shared drive.
type Folder struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	ParentID *string `json:"parent_id" db:"parent_id"` // NULL or the drive ID = root level
	DriveID  string  `json:"driveId" db:"drive_id"`
	// FullPath is the cached root-to-leaf chain of ancestor names. It is
	// derived at creation time and never hand-edited; ancestry is
	// immutable in this system so the value is write-once.
	FullPath          string    `json:"full_path" db:"full_path"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
	CreatedByFrontend bool      `json:"created_by_frontend" db:"created_by_frontend"`
}

// IsRoot reports whether the folder sits directly under its drive.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil || *f.ParentID == f.DriveID
}
