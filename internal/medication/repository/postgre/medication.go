package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"medication-reminder/internal/medication/repository"
	"medication-reminder/internal/model"
)

func (r *implRepository) Insert(ctx context.Context, opt repository.InsertOptions) (model.Medication, error) {
	med := model.Medication{
		ID:           uuid.NewString(),
		UserID:       opt.UserID,
		Name:         opt.Name,
		Dosage:       opt.Dosage,
		Frequency:    opt.Frequency,
		Times:        opt.Times,
		Instructions: opt.Instructions,
		CreatedAt:    time.Now(),
	}

	const q = `
		INSERT INTO medications (id, user_id, name, dosage, frequency, times, instructions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, q,
		med.ID, med.UserID, med.Name, med.Dosage, med.Frequency,
		pq.Array(med.Times), med.Instructions, med.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "medication repository: insert: %v", err)
		return model.Medication{}, err
	}
	return med, nil
}

func (r *implRepository) List(ctx context.Context, userID string) ([]model.Medication, error) {
	const q = `
		SELECT id, user_id, name, dosage, frequency, times, instructions, created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		r.l.Errorf(ctx, "medication repository: list: %v", err)
		return nil, err
	}
	defer rows.Close()

	var meds []model.Medication
	for rows.Next() {
		med, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, med)
	}
	return meds, rows.Err()
}

func (r *implRepository) Get(ctx context.Context, userID, id string) (model.Medication, error) {
	const q = `
		SELECT id, user_id, name, dosage, frequency, times, instructions, created_at
		FROM medications
		WHERE user_id = $1 AND id = $2`
	med, err := scanMedication(r.db.QueryRowContext(ctx, q, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Medication{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Medication{}, err
	}
	return med, nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.Medication, error) {
	const q = `
		UPDATE medications
		SET name = $3, dosage = $4, frequency = $5, times = $6, instructions = $7
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, name, dosage, frequency, times, instructions, created_at`
	med, err := scanMedication(r.db.QueryRowContext(ctx, q,
		opt.UserID, opt.ID, opt.Name, opt.Dosage, opt.Frequency,
		pq.Array(opt.Times), opt.Instructions,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Medication{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "medication repository: update: %v", err)
		return model.Medication{}, err
	}
	return med, nil
}

func (r *implRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM medications WHERE user_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, q, userID, id)
	if err != nil {
		r.l.Errorf(ctx, "medication repository: delete: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (model.Medication, error) {
	var med model.Medication
	err := s.Scan(
		&med.ID, &med.UserID, &med.Name, &med.Dosage, &med.Frequency,
		pq.Array(&med.Times), &med.Instructions, &med.CreatedAt,
	)
	return med, err
}
