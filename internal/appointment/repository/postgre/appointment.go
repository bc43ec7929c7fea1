package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"medication-reminder/internal/appointment/repository"
	"medication-reminder/internal/model"
)

func (r *implRepository) Insert(ctx context.Context, opt repository.InsertOptions) (model.Appointment, error) {
	appt := model.Appointment{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		DoctorName: opt.DoctorName,
		Date:       opt.Date,
		Time:       opt.Time,
		Reason:     opt.Reason,
		Type:       opt.Type,
		Status:     opt.Status,
		CreatedAt:  time.Now(),
	}

	const q = `
		INSERT INTO appointments (id, user_id, doctor_name, date, time, reason, type, status, calendar_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', $9)`
	_, err := r.db.ExecContext(ctx, q,
		appt.ID, appt.UserID, appt.DoctorName, appt.Date, appt.Time,
		appt.Reason, appt.Type, appt.Status, appt.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "appointment repository: insert: %v", err)
		return model.Appointment{}, err
	}
	return appt, nil
}

func (r *implRepository) List(ctx context.Context, userID string) ([]model.Appointment, error) {
	const q = `
		SELECT id, user_id, doctor_name, date, time, reason, type, status, calendar_link, created_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY date, time, id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		r.l.Errorf(ctx, "appointment repository: list: %v", err)
		return nil, err
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.DoctorName, &a.Date, &a.Time,
			&a.Reason, &a.Type, &a.Status, &a.CalendarLink, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *implRepository) UpdateStatus(ctx context.Context, userID, id string, status model.AppointmentStatus) (model.Appointment, error) {
	const q = `
		UPDATE appointments
		SET status = $3
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, doctor_name, date, time, reason, type, status, calendar_link, created_at`
	var a model.Appointment
	err := r.db.QueryRowContext(ctx, q, userID, id, status).Scan(
		&a.ID, &a.UserID, &a.DoctorName, &a.Date, &a.Time,
		&a.Reason, &a.Type, &a.Status, &a.CalendarLink, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Appointment{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "appointment repository: update status: %v", err)
		return model.Appointment{}, err
	}
	return a, nil
}

func (r *implRepository) SetCalendarLink(ctx context.Context, userID, id, link string) error {
	const q = `UPDATE appointments SET calendar_link = $3 WHERE user_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, q, userID, id, link)
	if err != nil {
		r.l.Errorf(ctx, "appointment repository: set calendar link: %v", err)
	}
	return err
}

func (r *implRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM appointments WHERE user_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, q, userID, id)
	if err != nil {
		r.l.Errorf(ctx, "appointment repository: delete: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
