package medication

// CreateInput holds the fields for a new medication.
type CreateInput struct {
	Name         string
	Dosage       string
	Frequency    string
	Times        []string
	Instructions string
}

// UpdateInput holds the replacement fields for an existing medication.
// All fields are written as given; callers send the full record.
type UpdateInput struct {
	Name         string
	Dosage       string
	Frequency    string
	Times        []string
	Instructions string
}
