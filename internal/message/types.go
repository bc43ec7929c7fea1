package message

// SendInput holds the fields for a new message to a doctor.
type SendInput struct {
	DoctorName string
	Body       string
}

// ReplyInput attaches a doctor's reply to an existing message.
type ReplyInput struct {
	Reply string
}
