package model

import "time"

// Medication is a medication record owned by one user.
type Medication struct {
	ID           string
	UserID       string
	Name         string
	Dosage       string
	Frequency    string
	Times        []string // clock times like "08:00"
	Instructions string
	CreatedAt    time.Time
}
