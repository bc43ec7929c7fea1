package repository

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the email unique constraint fires.
	ErrDuplicateEmail = errors.New("duplicate email")
)
