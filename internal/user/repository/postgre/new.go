package postgre

import (
	"database/sql"

	"medication-reminder/internal/user/repository"
	pkgLog "medication-reminder/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a new Postgres-backed user repository.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
