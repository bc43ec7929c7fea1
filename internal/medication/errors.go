package medication

import "errors"

var (
	ErrNotFound     = errors.New("medication not found")
	ErrNameRequired = errors.New("medication name is required")
)
