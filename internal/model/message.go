package model

import "time"

// Message is a message from a user to a doctor, with an optional reply.
type Message struct {
	ID         string
	UserID     string
	DoctorName string
	Body       string
	Reply      *string
	CreatedAt  time.Time
}
