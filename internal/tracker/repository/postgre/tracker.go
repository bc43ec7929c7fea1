package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker/repository"
)

func (r *implRepository) InsertMedicationEvent(ctx context.Context, opt repository.InsertMedicationEventOptions) (model.MedicationEvent, error) {
	ev := model.MedicationEvent{
		ID:             uuid.NewString(),
		UserID:         opt.UserID,
		Date:           opt.Date,
		MedicationID:   opt.MedicationID,
		MedicationName: opt.MedicationName,
		ScheduledTime:  opt.ScheduledTime,
		Taken:          opt.Taken,
		TakenAt:        opt.TakenAt,
		Missed:         opt.Missed,
	}

	const q = `
		INSERT INTO medication_events
			(id, user_id, date, medication_id, medication_name, scheduled_time, taken, taken_at, missed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, q,
		ev.ID, ev.UserID, ev.Date, ev.MedicationID, ev.MedicationName,
		ev.ScheduledTime, ev.Taken, ev.TakenAt, ev.Missed,
	)
	if err != nil {
		r.l.Errorf(ctx, "tracker repository: insert event: %v", err)
		return model.MedicationEvent{}, err
	}
	return ev, nil
}

func (r *implRepository) ListMedicationEvents(ctx context.Context, opt repository.ListMedicationEventsOptions) ([]model.MedicationEvent, error) {
	const q = `
		SELECT id, user_id, date, medication_id, medication_name, scheduled_time, taken, taken_at, missed
		FROM medication_events
		WHERE user_id = $1 AND date = $2
		ORDER BY scheduled_time, id`
	rows, err := r.db.QueryContext(ctx, q, opt.UserID, opt.Date)
	if err != nil {
		r.l.Errorf(ctx, "tracker repository: list events: %v", err)
		return nil, err
	}
	defer rows.Close()

	var events []model.MedicationEvent
	for rows.Next() {
		var ev model.MedicationEvent
		if err := rows.Scan(
			&ev.ID, &ev.UserID, &ev.Date, &ev.MedicationID, &ev.MedicationName,
			&ev.ScheduledTime, &ev.Taken, &ev.TakenAt, &ev.Missed,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *implRepository) SetWater(ctx context.Context, opt repository.SetWaterOptions) (model.WaterIntake, error) {
	const q = `
		INSERT INTO water_intake (user_id, date, glasses)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date)
		DO UPDATE SET glasses = EXCLUDED.glasses
		RETURNING glasses`
	w := model.WaterIntake{UserID: opt.UserID, Date: opt.Date}
	if err := r.db.QueryRowContext(ctx, q, opt.UserID, opt.Date, opt.Glasses).Scan(&w.Glasses); err != nil {
		r.l.Errorf(ctx, "tracker repository: set water: %v", err)
		return model.WaterIntake{}, err
	}
	return w, nil
}

func (r *implRepository) GetWater(ctx context.Context, userID, date string) (model.WaterIntake, error) {
	const q = `SELECT glasses FROM water_intake WHERE user_id = $1 AND date = $2`
	w := model.WaterIntake{UserID: userID, Date: date}
	err := r.db.QueryRowContext(ctx, q, userID, date).Scan(&w.Glasses)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WaterIntake{}, repository.ErrNotFound
	}
	if err != nil {
		return model.WaterIntake{}, err
	}
	return w, nil
}

func (r *implRepository) SetLunch(ctx context.Context, opt repository.SetLunchOptions) (model.LunchEntry, error) {
	const q = `
		INSERT INTO lunch_entries (user_id, date, eaten, eaten_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date)
		DO UPDATE SET eaten = EXCLUDED.eaten, eaten_at = EXCLUDED.eaten_at`
	if _, err := r.db.ExecContext(ctx, q, opt.UserID, opt.Date, opt.Eaten, opt.Time); err != nil {
		r.l.Errorf(ctx, "tracker repository: set lunch: %v", err)
		return model.LunchEntry{}, err
	}
	return model.LunchEntry{UserID: opt.UserID, Date: opt.Date, Eaten: opt.Eaten, Time: opt.Time}, nil
}

func (r *implRepository) GetLunch(ctx context.Context, userID, date string) (model.LunchEntry, error) {
	const q = `SELECT eaten, eaten_at FROM lunch_entries WHERE user_id = $1 AND date = $2`
	e := model.LunchEntry{UserID: userID, Date: date}
	err := r.db.QueryRowContext(ctx, q, userID, date).Scan(&e.Eaten, &e.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LunchEntry{}, repository.ErrNotFound
	}
	if err != nil {
		return model.LunchEntry{}, err
	}
	return e, nil
}
