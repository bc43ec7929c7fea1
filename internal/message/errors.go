package message

import "errors"

var (
	ErrNotFound     = errors.New("message not found")
	ErrBodyRequired = errors.New("message body is required")
)
