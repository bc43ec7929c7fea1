package usecase

import (
	"medication-reminder/internal/message/repository"
	pkgLog "medication-reminder/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new message UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}
