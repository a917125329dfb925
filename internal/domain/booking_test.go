package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPendingReview, StatusAssigned, true},
		{StatusPendingReview, StatusConfirmed, true},
		{StatusPendingReview, StatusRejected, true},
		{StatusAssigned, StatusConfirmed, true},
		{StatusAssigned, StatusPendingReview, true}, // снятие назначения
		{StatusConfirmed, StatusConfirmed, true},    // повторное подтверждение
		{StatusConfirmed, StatusRejected, true},
		{StatusRejected, StatusConfirmed, false},
		{StatusRejected, StatusPendingReview, false},
		{StatusConfirmed, StatusAssigned, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestSessionStatusTransitionsForwardOnly(t *testing.T) {
	assert.True(t, SessionBooked.CanTransitionTo(SessionInProgress))
	assert.True(t, SessionBooked.CanTransitionTo(SessionCompleted))
	assert.True(t, SessionInProgress.CanTransitionTo(SessionWaitingResults))
	assert.True(t, SessionWaitingResults.CanTransitionTo(SessionCompleted))

	assert.False(t, SessionCompleted.CanTransitionTo(SessionBooked))
	assert.False(t, SessionInProgress.CanTransitionTo(SessionBooked))
	assert.False(t, SessionBooked.CanTransitionTo(SessionBooked))
	assert.False(t, SessionBooked.CanTransitionTo(SessionStatus("UNKNOWN")))
}

func TestBookingEndAt(t *testing.T) {
	b := &Booking{
		StartAt:         time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
	}
	assert.Equal(t, time.Date(2026, 5, 10, 11, 30, 0, 0, time.UTC), b.EndAt())
}

func TestBookingIsLongSession(t *testing.T) {
	assert.False(t, (&Booking{DurationMinutes: 479}).IsLongSession())
	assert.True(t, (&Booking{DurationMinutes: 480}).IsLongSession())
	assert.True(t, (&Booking{DurationMinutes: 600}).IsLongSession())
}

func TestDayBlockBounds(t *testing.T) {
	dayStart := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 5, 10, 23, 59, 59, 0, time.UTC)
	at10 := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)
	at12 := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	full := &DayBlock{}
	s, e := full.Bounds(dayStart, dayEnd)
	assert.Equal(t, dayStart, s)
	assert.Equal(t, dayEnd, e)

	partial := &DayBlock{StartAt: &at10, EndAt: &at12}
	s, e = partial.Bounds(dayStart, dayEnd)
	assert.Equal(t, at10, s)
	assert.Equal(t, at12, e)

	openEnded := &DayBlock{StartAt: &at10}
	s, e = openEnded.Bounds(dayStart, dayEnd)
	assert.Equal(t, at10, s)
	assert.Equal(t, dayEnd, e)
}
