package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrUniqueViolation = "23505"

// IsPgErrorWithCode unwraps to the pgconn error and compares its
// SQLSTATE. Repositories use it to map constraint hits to sentinels.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
