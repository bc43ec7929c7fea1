package http

import (
	"time"

	"medication-reminder/internal/message"
	"medication-reminder/internal/model"
)

// --- Request DTOs ---

type sendReq struct {
	DoctorName string `json:"doctor_name"`
	Body       string `json:"body" binding:"required"`
}

func (req sendReq) toInput() message.SendInput {
	return message.SendInput{DoctorName: req.DoctorName, Body: req.Body}
}

type replyReq struct {
	Reply string `json:"reply" binding:"required"`
}

// --- Response DTOs ---

type messageResp struct {
	ID         string    `json:"id"`
	DoctorName string    `json:"doctor_name,omitempty"`
	Body       string    `json:"body"`
	Reply      *string   `json:"reply,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:         m.ID,
		DoctorName: m.DoctorName,
		Body:       m.Body,
		Reply:      m.Reply,
		CreatedAt:  m.CreatedAt,
	}
}

func newMessageResps(msgs []model.Message) []messageResp {
	resps := make([]messageResp, 0, len(msgs))
	for _, m := range msgs {
		resps = append(resps, newMessageResp(m))
	}
	return resps
}
