package repository

import (
	"context"

	"medication-reminder/internal/model"
)

// Repository is the interface for appointment data access operations.
type Repository interface {
	Insert(ctx context.Context, opt InsertOptions) (model.Appointment, error)
	List(ctx context.Context, userID string) ([]model.Appointment, error)
	UpdateStatus(ctx context.Context, userID, id string, status model.AppointmentStatus) (model.Appointment, error)
	SetCalendarLink(ctx context.Context, userID, id, link string) error
	Delete(ctx context.Context, userID, id string) error
}
