package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"medication-reminder/internal/model"
	"medication-reminder/internal/user/repository"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

func (r *implRepository) Insert(ctx context.Context, opt repository.InsertOptions) (model.User, error) {
	u := model.User{
		ID:        uuid.NewString(),
		Name:      opt.Name,
		Email:     opt.Email,
		Password:  opt.PasswordHash,
		Age:       opt.Age,
		Phone:     opt.Phone,
		Diseases:  opt.Diseases,
		CreatedAt: time.Now(),
	}

	const q = `
		INSERT INTO users (id, name, email, password, age, phone, diseases, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, q,
		u.ID, u.Name, u.Email, u.Password, u.Age, u.Phone, pq.Array(u.Diseases), u.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "user repository: insert: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const q = `
		SELECT id, name, email, password, age, phone, diseases, created_at
		FROM users
		WHERE email = $1`
	return r.getOne(ctx, q, email)
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	const q = `
		SELECT id, name, email, password, age, phone, diseases, created_at
		FROM users
		WHERE id = $1`
	return r.getOne(ctx, q, id)
}

func (r *implRepository) getOne(ctx context.Context, q string, arg any) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Age, &u.Phone, pq.Array(&u.Diseases), &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, opt repository.UpdateProfileOptions) (model.User, error) {
	const q = `
		UPDATE users
		SET name = $2, age = $3, phone = $4, diseases = $5
		WHERE id = $1
		RETURNING id, name, email, password, age, phone, diseases, created_at`
	var u model.User
	err := r.db.QueryRowContext(ctx, q,
		opt.ID, opt.Name, opt.Age, opt.Phone, pq.Array(opt.Diseases),
	).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Age, &u.Phone, pq.Array(&u.Diseases), &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "user repository: update profile: %v", err)
		return model.User{}, err
	}
	return u, nil
}
