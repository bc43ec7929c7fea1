package response

import (
	"encoding/json"
	"time"
)

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "something went wrong"

	InternalServerErrorCode = 500

	// DateFormat is the wire format for calendar dates (tracker days).
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = time.RFC3339
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// DateTime is a timestamp that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
