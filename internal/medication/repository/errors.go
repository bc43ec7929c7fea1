package repository

import "errors"

// ErrNotFound is returned when no medication matches the lookup.
var ErrNotFound = errors.New("not found")
