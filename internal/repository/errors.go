package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/seap-dev/subscription-api/internal/domain"
)

const (
	pqFKViolation     = "23503"
	pqUniqueViolation = "23505"
)

// wrapErr translates driver errors into the domain taxonomy: sql.ErrNoRows
// becomes ErrNotFound, constraint violations keep their storage-error class
// but get a readable message.
func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqFKViolation:
			return fmt.Errorf("%s: referenced row does not exist: %w", op, err)
		case pqUniqueViolation:
			return fmt.Errorf("%s: duplicate value violates unique constraint: %w", op, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
