package repository

import "errors"

// ErrNotFound is returned when no appointment matches the lookup.
var ErrNotFound = errors.New("not found")
