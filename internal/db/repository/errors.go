package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// integrityConstraintClass is the SQLSTATE class for not-null, foreign-key,
// unique and check violations.
const integrityConstraintClass = "23"

// IsConstraintViolation reports whether err was raised by a store integrity constraint.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityConstraintClass
}
