package usecase

import (
	"time"

	"medication-reminder/internal/voice"
	"medication-reminder/pkg/log"
)

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	meds    voice.MedicationLister
	tracker voice.TrackerClient
	l       log.Logger

	now func() time.Time
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates the voice command usecase.
func New(meds voice.MedicationLister, tracker voice.TrackerClient, l log.Logger) *implUseCase {
	return &implUseCase{
		meds:    meds,
		tracker: tracker,
		l:       l,
		now:     time.Now,
	}
}
