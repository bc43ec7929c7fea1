package repository

// InsertOptions holds the parameters for storing a message.
type InsertOptions struct {
	UserID     string
	DoctorName string
	Body       string
}
