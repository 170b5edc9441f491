package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta el código 23505 (unique_violation) para traducirlo
// a domain.ErrDuplicate en los repos con índices únicos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// Drivers intermedios pueden envolver el error sin conservar el tipo.
	return strings.Contains(err.Error(), "23505")
}
