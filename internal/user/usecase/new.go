package usecase

import (
	"medication-reminder/internal/user/repository"
	pkgLog "medication-reminder/pkg/log"
	"medication-reminder/pkg/scope"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	scope scope.Manager
}

// New creates a new user UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, scopeManager scope.Manager) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		scope: scopeManager,
	}
}
