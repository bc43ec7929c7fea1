package appointment

// CreateInput holds the fields for booking an appointment.
type CreateInput struct {
	DoctorName string
	Date       string // "2006-01-02"
	Time       string // "15:04"
	Reason     string
	Type       string
}

// UpdateStatusInput moves an appointment through its lifecycle.
type UpdateStatusInput struct {
	Status string
}
