package http

import (
	"time"

	"medication-reminder/internal/appointment"
	"medication-reminder/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	DoctorName string `json:"doctor_name" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Reason     string `json:"reason"`
	Type       string `json:"type"`
}

func (req createReq) toInput() appointment.CreateInput {
	return appointment.CreateInput{
		DoctorName: req.DoctorName,
		Date:       req.Date,
		Time:       req.Time,
		Reason:     req.Reason,
		Type:       req.Type,
	}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type appointmentResp struct {
	ID           string    `json:"id"`
	DoctorName   string    `json:"doctor_name"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Reason       string    `json:"reason,omitempty"`
	Type         string    `json:"type,omitempty"`
	Status       string    `json:"status"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newAppointmentResp(a model.Appointment) appointmentResp {
	return appointmentResp{
		ID:           a.ID,
		DoctorName:   a.DoctorName,
		Date:         a.Date,
		Time:         a.Time,
		Reason:       a.Reason,
		Type:         a.Type,
		Status:       string(a.Status),
		CalendarLink: a.CalendarLink,
		CreatedAt:    a.CreatedAt,
	}
}

func newAppointmentResps(appts []model.Appointment) []appointmentResp {
	resps := make([]appointmentResp, 0, len(appts))
	for _, a := range appts {
		resps = append(resps, newAppointmentResp(a))
	}
	return resps
}
