package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-reminder/internal/appointment"
	"medication-reminder/internal/appointment/repository"
	"medication-reminder/internal/model"
	"medication-reminder/pkg/gcalendar"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Appointment, error) {
	return uc.repo.List(ctx, sc.UserID)
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input appointment.CreateInput) (model.Appointment, error) {
	if strings.TrimSpace(input.DoctorName) == "" {
		return model.Appointment{}, appointment.ErrDoctorRequired
	}
	start, err := uc.parseStart(input.Date, input.Time)
	if err != nil {
		return model.Appointment{}, appointment.ErrBadDateTime
	}

	appt, err := uc.repo.Insert(ctx, repository.InsertOptions{
		UserID:     sc.UserID,
		DoctorName: strings.TrimSpace(input.DoctorName),
		Date:       input.Date,
		Time:       input.Time,
		Reason:     input.Reason,
		Type:       input.Type,
		Status:     model.AppointmentPending,
	})
	if err != nil {
		return model.Appointment{}, err
	}

	// Calendar sync is best effort: a sync failure never fails the booking.
	if uc.calendar != nil {
		if link := uc.syncCalendar(ctx, appt, start); link != "" {
			appt.CalendarLink = link
		}
	}
	return appt, nil
}

func (uc *implUseCase) syncCalendar(ctx context.Context, appt model.Appointment, start time.Time) string {
	ev, err := uc.calendar.CreateEvent(ctx, gcalendar.EventInput{
		Summary:     fmt.Sprintf("Doctor appointment: %s", appt.DoctorName),
		Description: appt.Reason,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "appointment usecase: calendar sync failed for %s: %v", appt.ID, err)
		return ""
	}
	if err := uc.repo.SetCalendarLink(ctx, appt.UserID, appt.ID, ev.HtmlLink); err != nil {
		uc.l.Warnf(ctx, "appointment usecase: persist calendar link for %s: %v", appt.ID, err)
	}
	return ev.HtmlLink
}

func (uc *implUseCase) parseStart(date, clock string) (time.Time, error) {
	loc := time.Local
	if uc.timezone != "" {
		if l, err := time.LoadLocation(uc.timezone); err == nil {
			loc = l
		}
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, id string, input appointment.UpdateStatusInput) (model.Appointment, error) {
	status := model.AppointmentStatus(input.Status)
	switch status {
	case model.AppointmentPending, model.AppointmentConfirmed, model.AppointmentCancelled:
	default:
		return model.Appointment{}, appointment.ErrInvalidStatus
	}

	appt, err := uc.repo.UpdateStatus(ctx, sc.UserID, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Appointment{}, appointment.ErrNotFound
	}
	return appt, err
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.Delete(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return appointment.ErrNotFound
	}
	return err
}
