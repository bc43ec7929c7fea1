package user

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailRequired      = errors.New("email is required")
)
