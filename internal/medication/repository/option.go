package repository

// InsertOptions holds the parameters for creating a medication.
type InsertOptions struct {
	UserID       string
	Name         string
	Dosage       string
	Frequency    string
	Times        []string
	Instructions string
}

// UpdateOptions holds the parameters for replacing a medication's fields.
type UpdateOptions struct {
	UserID       string
	ID           string
	Name         string
	Dosage       string
	Frequency    string
	Times        []string
	Instructions string
}
