package http

import (
	"medication-reminder/internal/voice"
)

// --- Request DTOs ---

type commandReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

type resultReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

type errorReq struct {
	Reason string `json:"reason" binding:"required"`
}

// --- Response DTOs ---

type outcomeResp struct {
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	MedicationID string `json:"medication_id,omitempty"`
}

func newOutcomeResp(out voice.DispatchOutcome) outcomeResp {
	return outcomeResp{
		Kind:         string(out.Kind),
		Message:      out.Message,
		MedicationID: out.MedicationID,
	}
}

func newOutcomeRespPtr(out voice.DispatchOutcome) *outcomeResp {
	r := newOutcomeResp(out)
	return &r
}

type captureResp struct {
	State      string       `json:"state"`
	Transcript string       `json:"transcript,omitempty"`
	Error      string       `json:"error,omitempty"`
	Outcome    *outcomeResp `json:"outcome,omitempty"`
}

func (h *handler) newCaptureResp(s *voice.CaptureSession) captureResp {
	state, transcript, errReason := s.Snapshot()
	return captureResp{
		State:      string(state),
		Transcript: transcript,
		Error:      errReason,
	}
}
