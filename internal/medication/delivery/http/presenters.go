package http

import (
	"time"

	"medication-reminder/internal/medication"
	"medication-reminder/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name         string   `json:"name" binding:"required"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"`
	Times        []string `json:"times"`
	Instructions string   `json:"instructions"`
}

func (req createReq) toInput() medication.CreateInput {
	return medication.CreateInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Times:        req.Times,
		Instructions: req.Instructions,
	}
}

type updateReq struct {
	Name         string   `json:"name" binding:"required"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"`
	Times        []string `json:"times"`
	Instructions string   `json:"instructions"`
}

func (req updateReq) toInput() medication.UpdateInput {
	return medication.UpdateInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Times:        req.Times,
		Instructions: req.Instructions,
	}
}

// --- Response DTOs ---

type medicationResp struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Frequency    string    `json:"frequency,omitempty"`
	Times        []string  `json:"times"`
	Instructions string    `json:"instructions,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newMedicationResp(med model.Medication) medicationResp {
	times := med.Times
	if times == nil {
		times = []string{}
	}
	return medicationResp{
		ID:           med.ID,
		Name:         med.Name,
		Dosage:       med.Dosage,
		Frequency:    med.Frequency,
		Times:        times,
		Instructions: med.Instructions,
		CreatedAt:    med.CreatedAt,
	}
}

func newMedicationResps(meds []model.Medication) []medicationResp {
	resps := make([]medicationResp, 0, len(meds))
	for _, med := range meds {
		resps = append(resps, newMedicationResp(med))
	}
	return resps
}
