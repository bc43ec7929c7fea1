package gcalendar

import "time"

// EventInput is the input for creating a calendar event.
type EventInput struct {
	CalendarID  string // defaults to "primary"
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
