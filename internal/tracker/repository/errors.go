package repository

import "errors"

// ErrNotFound is returned when no row matches the lookup.
var ErrNotFound = errors.New("not found")
