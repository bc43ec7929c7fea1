package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"medication-reminder/internal/message/repository"
	"medication-reminder/internal/model"
)

func (r *implRepository) Insert(ctx context.Context, opt repository.InsertOptions) (model.Message, error) {
	msg := model.Message{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		DoctorName: opt.DoctorName,
		Body:       opt.Body,
		CreatedAt:  time.Now(),
	}

	const q = `
		INSERT INTO messages (id, user_id, doctor_name, body, reply, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5)`
	_, err := r.db.ExecContext(ctx, q, msg.ID, msg.UserID, msg.DoctorName, msg.Body, msg.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "message repository: insert: %v", err)
		return model.Message{}, err
	}
	return msg, nil
}

func (r *implRepository) List(ctx context.Context, userID string) ([]model.Message, error) {
	const q = `
		SELECT id, user_id, doctor_name, body, reply, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		r.l.Errorf(ctx, "message repository: list: %v", err)
		return nil, err
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.DoctorName, &m.Body, &m.Reply, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *implRepository) SetReply(ctx context.Context, userID, id, reply string) (model.Message, error) {
	const q = `
		UPDATE messages
		SET reply = $3
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, doctor_name, body, reply, created_at`
	var m model.Message
	err := r.db.QueryRowContext(ctx, q, userID, id, reply).Scan(
		&m.ID, &m.UserID, &m.DoctorName, &m.Body, &m.Reply, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Message{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "message repository: set reply: %v", err)
		return model.Message{}, err
	}
	return m, nil
}
