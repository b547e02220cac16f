package repository

import "errors"

var (
	// ErrNotFound is returned by lookups when no row matches. Use cases rely
	// on it to tell absence (a business outcome) apart from infrastructure
	// failure.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert hits a uniqueness constraint.
	// The check-then-insert race on registration is closed by the database,
	// not the application; this error is how the storage layer reports it.
	ErrDuplicate = errors.New("duplicate")
)
