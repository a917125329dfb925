package domain

import "time"

// Display modes for calendar events
const (
	DisplayDefault    = ""
	DisplayBackground = "background"
)

// EventProps extra data attached to a calendar event
type EventProps struct {
	Type             string `json:"type,omitempty"` // "block" для блокировок дней
	BookingID        int64  `json:"bookingId,omitempty"`
	Status           string `json:"status,omitempty"`
	PackageName      string `json:"packageName,omitempty"`
	CustomerName     string `json:"customerName,omitempty"`
	AssignedTeamID   *int64 `json:"assignedTeamId,omitempty"`
	AssignedTeamName string `json:"assignedTeamName,omitempty"`
}

// CalendarEvent represents a displayable calendar entry: a timed booking,
// an all-day bar for a long session, or a background block
type CalendarEvent struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Start   time.Time  `json:"start"`
	End     time.Time  `json:"end"`
	AllDay  bool       `json:"allDay,omitempty"`
	Display string     `json:"display,omitempty"`
	Props   EventProps `json:"extendedProps"`
}
