package http

import (
	"time"

	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker"
)

// --- Request DTOs ---

type trackMedicationReq struct {
	MedicationID  string     `json:"medication_id" binding:"required"`
	ScheduledTime string     `json:"scheduled_time"`
	Taken         bool       `json:"taken"`
	TakenAt       *time.Time `json:"taken_at"`
	Missed        bool       `json:"missed"`
}

func (req trackMedicationReq) toInput() tracker.TrackMedicationInput {
	return tracker.TrackMedicationInput{
		MedicationID:  req.MedicationID,
		ScheduledTime: req.ScheduledTime,
		Taken:         req.Taken,
		TakenAt:       req.TakenAt,
		Missed:        req.Missed,
	}
}

// Glasses is a pointer so an explicit 0 (clearing the day) still passes the
// required binding.
type trackWaterReq struct {
	Glasses *int `json:"glasses" binding:"required"`
}

type trackLunchReq struct {
	Eaten bool `json:"eaten"`
}

// --- Response DTOs ---

type eventResp struct {
	ID             string     `json:"id"`
	Date           string     `json:"date"`
	MedicationID   string     `json:"medication_id"`
	MedicationName string     `json:"medication_name"`
	ScheduledTime  string     `json:"scheduled_time,omitempty"`
	Taken          bool       `json:"taken"`
	TakenAt        *time.Time `json:"taken_at,omitempty"`
	Missed         bool       `json:"missed"`
}

func newEventResp(ev model.MedicationEvent) eventResp {
	return eventResp{
		ID:             ev.ID,
		Date:           ev.Date,
		MedicationID:   ev.MedicationID,
		MedicationName: ev.MedicationName,
		ScheduledTime:  ev.ScheduledTime,
		Taken:          ev.Taken,
		TakenAt:        ev.TakenAt,
		Missed:         ev.Missed,
	}
}

type waterResp struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
}

type lunchResp struct {
	Date  string     `json:"date"`
	Eaten bool       `json:"eaten"`
	Time  *time.Time `json:"time,omitempty"`
}

type todayResp struct {
	Date   string      `json:"date"`
	Events []eventResp `json:"events"`
	Water  waterResp   `json:"water"`
	Lunch  lunchResp   `json:"lunch"`
}

func newTodayResp(out tracker.TodayOutput) todayResp {
	events := make([]eventResp, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, newEventResp(ev))
	}
	return todayResp{
		Date:   out.Date,
		Events: events,
		Water:  waterResp{Date: out.Water.Date, Glasses: out.Water.Glasses},
		Lunch:  lunchResp{Date: out.Lunch.Date, Eaten: out.Lunch.Eaten, Time: out.Lunch.Time},
	}
}

type reminderResp struct {
	MedicationID   string `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage,omitempty"`
	ScheduledTime  string `json:"scheduled_time"`
	Status         string `json:"status"`
}

func newReminderResps(rs []tracker.Reminder) []reminderResp {
	resps := make([]reminderResp, 0, len(rs))
	for _, r := range rs {
		resps = append(resps, reminderResp{
			MedicationID:   r.MedicationID,
			MedicationName: r.MedicationName,
			Dosage:         r.Dosage,
			ScheduledTime:  r.ScheduledTime,
			Status:         string(r.Status),
		})
	}
	return resps
}
