package repository

import "errors"

// ErrNotFound is returned when no message matches the lookup.
var ErrNotFound = errors.New("not found")
