package tracker

import "errors"

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrInvalidGlasses     = errors.New("glasses must not be negative")
	ErrInvalidEvent       = errors.New("event must be taken or missed")
)
