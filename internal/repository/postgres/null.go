package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// The sweep job predates this service and writes mirror rows without
// optional columns, so reads must tolerate NULL where the models carry
// plain values.

// textValue unwraps a nullable text column, empty when NULL.
func textValue(t pgtype.Text) string {
	if t.Valid {
		return t.String
	}
	return ""
}

// timeValue unwraps a nullable timestamptz column, zero when NULL.
func timeValue(t pgtype.Timestamptz) time.Time {
	if t.Valid {
		return t.Time
	}
	return time.Time{}
}
