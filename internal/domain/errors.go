package domain

import "errors"

var (
	// ErrNotFound marks reads, updates and deletes that matched no row.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks rejected input: malformed email, bad body,
	// ambiguous query parameters.
	ErrValidation = errors.New("validation failed")
)
