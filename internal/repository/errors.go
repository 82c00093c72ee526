package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrEmailTaken is returned by Users.Create when the email column's
// unique constraint rejects the insert.
var ErrEmailTaken = errors.New("email already registered")

// isUniqueViolation reports whether err is a duplicate-key rejection
// from either supported driver. Postgres surfaces a *pgconn.PgError
// with SQLSTATE 23505; modernc's sqlite driver only exposes the
// constraint failure through its message text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
