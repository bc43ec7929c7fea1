package usecase

import (
	"medication-reminder/internal/appointment/repository"
	"medication-reminder/pkg/gcalendar"
	pkgLog "medication-reminder/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar *gcalendar.Client // nil when calendar sync is disabled
	timezone string
}

// New creates a new appointment UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, calendar *gcalendar.Client, timezone string) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
	}
}
