package usecase

import (
	"time"

	"medication-reminder/internal/tracker"
	"medication-reminder/internal/tracker/repository"
	pkgLog "medication-reminder/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	meds tracker.MedicationStore

	now func() time.Time
}

// New creates a new tracker UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, meds tracker.MedicationStore) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		meds: meds,
		now:  time.Now,
	}
}

// today returns the current calendar day in the server's local time.
func (uc *implUseCase) today() string {
	return uc.now().Format("2006-01-02")
}
