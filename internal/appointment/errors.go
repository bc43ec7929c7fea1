package appointment

import "errors"

var (
	ErrNotFound       = errors.New("appointment not found")
	ErrInvalidStatus  = errors.New("invalid appointment status")
	ErrDoctorRequired = errors.New("doctor name is required")
	ErrBadDateTime    = errors.New("date must be YYYY-MM-DD and time HH:MM")
)
