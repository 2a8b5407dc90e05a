package models

import "time"

// SyncRun is one entry of the synchronization sweep history. Rows are
// written by the external sweep; this service only reads them.
type SyncRun struct {
	ID           string    `json:"id" db:"id"`
	SyncDate     time.Time `json:"sync_date" db:"sync_date"`
	DriveCount   int       `json:"drive_count" db:"drive_count"`
	FolderCount  int       `json:"folder_count" db:"folder_count"`
	Status       string    `json:"status" db:"status"`
	ErrorMessage string    `json:"error_message,omitempty" db:"error_message"`
	DurationMS   int64     `json:"duration_ms" db:"duration_ms"`
}
