package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgDuplicateError reports whether err is a unique constraint
// violation (SQLSTATE 23505). The mirror writer maps it to a drive
// conflict: the remote provider allows duplicate drive names, but the
// mirror keys on the remote ID.
func IsPgDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
