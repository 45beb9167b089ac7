package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned by the in-memory stores for unknown ids.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err means the record does not exist, for any backend.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}
