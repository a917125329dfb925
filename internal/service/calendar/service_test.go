package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.AssignedTeamID != nil {
			if b.AssignedTeamID == nil || *b.AssignedTeamID != *filter.AssignedTeamID {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeDayBlockRepo struct {
	blocks []*domain.DayBlock
}

func (f *fakeDayBlockRepo) ListRange(_ context.Context, _, _ *time.Time) ([]*domain.DayBlock, error) {
	return f.blocks, nil
}

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)
	return loc
}

func booking(id int64, start time.Time, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		StartAt:         start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
		PackageName:     "Портретная съемка",
		CustomerName:    "Анна",
	}
}

func TestEvents_TimedBooking(t *testing.T) {
	loc := mustLocation(t)
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, loc)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{booking(1, start, 90)}}
	service := NewService(bookings, &fakeDayBlockRepo{}, loc)

	events, err := service.Events(context.Background(), EventsQuery{
		From: start.AddDate(0, 0, -1),
		To:   start.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "booking-1", events[0].ID)
	assert.Equal(t, "Портретная съемка — Анна", events[0].Title)
	assert.Equal(t, start, events[0].Start)
	assert.Equal(t, start.Add(90*time.Minute), events[0].End)
	assert.False(t, events[0].AllDay)
	assert.Equal(t, int64(1), events[0].Props.BookingID)
}

func TestEvents_LongSessionRendersAllDay(t *testing.T) {
	loc := mustLocation(t)
	// 10 часов: заканчивается в 20:00 того же дня
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, loc)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{booking(2, start, 600)}}
	service := NewService(bookings, &fakeDayBlockRepo{}, loc)

	events, err := service.Events(context.Background(), EventsQuery{
		From: start.AddDate(0, 0, -1),
		To:   start.AddDate(0, 0, 2),
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].AllDay)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, loc), events[0].Start)
	// Полоса тянется по день, следующий за днем окончания
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, loc), events[0].End)
}

func TestEvents_LongSessionSpanningMidnight(t *testing.T) {
	loc := mustLocation(t)
	// Начинается вечером, заканчивается на следующий день
	start := time.Date(2026, 9, 15, 20, 0, 0, 0, loc)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{booking(3, start, 480)}}
	service := NewService(bookings, &fakeDayBlockRepo{}, loc)

	events, err := service.Events(context.Background(), EventsQuery{
		From: start.AddDate(0, 0, -1),
		To:   start.AddDate(0, 0, 2),
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].AllDay)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, loc), events[0].Start)
	assert.Equal(t, time.Date(2026, 9, 17, 0, 0, 0, 0, loc), events[0].End)
}

func TestEvents_TeamOnlyFiltersByViewer(t *testing.T) {
	loc := mustLocation(t)
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, loc)

	mine := booking(1, start, 60)
	mine.AssignedTeamID = ptr.Ptr(int64(7))
	other := booking(2, start, 60)
	other.AssignedTeamID = ptr.Ptr(int64(8))

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{mine, other}}
	service := NewService(bookings, &fakeDayBlockRepo{}, loc)

	viewer := &domain.User{ID: 7, Role: domain.RoleTeam}
	events, err := service.Events(context.Background(), EventsQuery{
		From:     start.AddDate(0, 0, -1),
		To:       start.AddDate(0, 0, 1),
		TeamOnly: true,
		Viewer:   viewer,
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "booking-1", events[0].ID)
	require.NotNil(t, bookings.lastFilter.AssignedTeamID)
	assert.Equal(t, int64(7), *bookings.lastFilter.AssignedTeamID)
}

func TestEvents_BlocksVisibleToAdminOnly(t *testing.T) {
	loc := mustLocation(t)
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, loc)
	blockDay := time.Date(2026, 9, 16, 0, 0, 0, 0, loc)

	blocks := &fakeDayBlockRepo{blocks: []*domain.DayBlock{
		{ID: 5, Day: blockDay, FullDay: true, Reason: ptr.Ptr("Ремонт")},
	}}
	service := NewService(&fakeBookingRepo{}, blocks, loc)

	query := EventsQuery{
		From:   start.AddDate(0, 0, -1),
		To:     start.AddDate(0, 0, 3),
		Viewer: &domain.User{ID: 1, Role: domain.RoleCustomer},
	}

	events, err := service.Events(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, events)

	query.Viewer = &domain.User{ID: 2, Role: domain.RoleAdmin}
	events, err = service.Events(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "block-5", events[0].ID)
	assert.Equal(t, "Ремонт", events[0].Title)
	assert.Equal(t, domain.DisplayBackground, events[0].Display)
	assert.True(t, events[0].AllDay)
}

func TestEvents_PartialBlockUsesExplicitBounds(t *testing.T) {
	loc := mustLocation(t)
	blockDay := time.Date(2026, 9, 16, 0, 0, 0, 0, loc)
	blockStart := time.Date(2026, 9, 16, 10, 0, 0, 0, loc)
	blockEnd := time.Date(2026, 9, 16, 12, 0, 0, 0, loc)

	blocks := &fakeDayBlockRepo{blocks: []*domain.DayBlock{
		{ID: 6, Day: blockDay, FullDay: false, StartAt: &blockStart, EndAt: &blockEnd},
	}}
	service := NewService(&fakeBookingRepo{}, blocks, loc)

	events, err := service.Events(context.Background(), EventsQuery{
		From:   blockDay.AddDate(0, 0, -1),
		To:     blockDay.AddDate(0, 0, 1),
		Viewer: &domain.User{ID: 2, Role: domain.RoleAdmin},
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, blockStart, events[0].Start)
	assert.Equal(t, blockEnd, events[0].End)
	assert.False(t, events[0].AllDay)
}
