package capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/capacityoverride"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings      []*domain.Booking
	lastExcludeID *int64
}

func (f *fakeBookingRepo) GetConfirmedStartingBefore(_ context.Context, endAt time.Time, excludeID *int64) ([]*domain.Booking, error) {
	f.lastExcludeID = excludeID

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Status != domain.StatusConfirmed {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.StartAt.Before(endAt) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeDayBlockRepo struct {
	blocks []*domain.DayBlock
}

func (f *fakeDayBlockRepo) ListForDay(_ context.Context, dayStart, dayEnd time.Time) ([]*domain.DayBlock, error) {
	result := make([]*domain.DayBlock, 0)
	for _, b := range f.blocks {
		if !b.Day.Before(dayStart) && !b.Day.After(dayEnd) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeOverrideRepo struct {
	override *domain.CapacityOverride
}

func (f *fakeOverrideRepo) GetByDay(_ context.Context, day time.Time) (*domain.CapacityOverride, error) {
	if f.override != nil && f.override.Day.Equal(day) {
		return f.override, nil
	}
	return nil, capacityoverride.ErrOverrideNotFound
}

type fakeUnavailableRepo struct {
	count int
}

func (f *fakeUnavailableRepo) CountDistinctOverlapping(_ context.Context, _, _ time.Time) (int, error) {
	return f.count, nil
}

type fakeUserRepo struct {
	activeTeam int
}

func (f *fakeUserRepo) CountActiveTeam(_ context.Context) (int, error) {
	return f.activeTeam, nil
}

type fixture struct {
	bookings    *fakeBookingRepo
	blocks      *fakeDayBlockRepo
	overrides   *fakeOverrideRepo
	unavailable *fakeUnavailableRepo
	users       *fakeUserRepo
	service     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)

	f := &fixture{
		bookings:    &fakeBookingRepo{},
		blocks:      &fakeDayBlockRepo{},
		overrides:   &fakeOverrideRepo{},
		unavailable: &fakeUnavailableRepo{},
		users:       &fakeUserRepo{activeTeam: 3},
	}
	f.service = NewService(f.bookings, f.blocks, f.overrides, f.unavailable, f.users, loc)
	return f
}

// at строит время в часовом поясе Asia/Dubai
func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	require.NoError(t, err)
	return time.Date(2026, 9, 15, hour, min, 0, 0, loc)
}

func day(t *testing.T) time.Time {
	t.Helper()
	return at(t, 0, 0)
}

func confirmed(id int64, start time.Time, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		StartAt:         start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestCheckCapacity_AllowedWhenFree(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Nil(t, result.Reason)
}

func TestCheckCapacity_FullDayBlockDenies(t *testing.T) {
	f := newFixture(t)
	f.blocks.blocks = []*domain.DayBlock{
		{ID: 1, Day: day(t), FullDay: true, Reason: ptr.Ptr("Техническое обслуживание")},
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.False(t, result.Allowed)
	require.NotNil(t, result.Reason)
	assert.Equal(t, "Техническое обслуживание", *result.Reason)
}

func TestCheckCapacity_PartialBlockOverlap(t *testing.T) {
	f := newFixture(t)
	f.blocks.blocks = []*domain.DayBlock{
		{ID: 1, Day: day(t), FullDay: false, StartAt: ptr.Ptr(at(t, 10, 0)), EndAt: ptr.Ptr(at(t, 12, 0))},
	}

	tests := []struct {
		name            string
		start           time.Time
		durationMinutes int
		wantAllowed     bool
	}{
		{"overlaps block tail", at(t, 9, 0), 90, false},
		{"inside block", at(t, 10, 30), 30, false},
		{"starts exactly at block end", at(t, 12, 0), 60, true},
		{"ends exactly at block start", at(t, 8, 0), 120, true},
		{"well before block", at(t, 7, 0), 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.service.CheckCapacity(context.Background(), tt.start, tt.durationMinutes, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, result.Allowed)
		})
	}
}

func TestCheckCapacity_PartialBlockWithOpenEnd(t *testing.T) {
	f := newFixture(t)
	// Блокировка без end_at действует до конца дня
	f.blocks.blocks = []*domain.DayBlock{
		{ID: 1, Day: day(t), FullDay: false, StartAt: ptr.Ptr(at(t, 18, 0))},
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 19, 0), 60, nil)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	result, err = f.service.CheckCapacity(context.Background(), at(t, 16, 0), 60, nil)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCheckCapacity_DeniesAtEffectiveCapacity(t *testing.T) {
	f := newFixture(t)
	// 3 активных сотрудника, 1 недоступен: вместимость 2
	f.unavailable.count = 1
	f.bookings.bookings = []*domain.Booking{
		confirmed(1, at(t, 10, 0), 120),
		confirmed(2, at(t, 10, 30), 120),
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 11, 0), 60, nil)

	require.NoError(t, err)
	assert.False(t, result.Allowed)
	require.NotNil(t, result.Reason)
}

func TestCheckCapacity_AllowsBelowEffectiveCapacity(t *testing.T) {
	f := newFixture(t)
	f.unavailable.count = 1
	f.bookings.bookings = []*domain.Booking{
		confirmed(1, at(t, 10, 0), 120),
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 11, 0), 60, nil)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCheckCapacity_TouchingBookingsDoNotCount(t *testing.T) {
	f := newFixture(t)
	f.users.activeTeam = 1
	f.bookings.bookings = []*domain.Booking{
		// Заканчивается ровно в момент начала кандидата
		confirmed(1, at(t, 9, 0), 60),
		// Начинается ровно в момент конца кандидата
		confirmed(2, at(t, 11, 0), 60),
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCheckCapacity_OverrideZeroDeniesEverything(t *testing.T) {
	f := newFixture(t)
	f.overrides.override = &domain.CapacityOverride{Day: day(t), Capacity: 0}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.False(t, result.Allowed)
}

func TestCheckCapacity_OverrideReplacesComputedCapacity(t *testing.T) {
	f := newFixture(t)
	// Переопределение поднимает вместимость выше состава команды
	f.users.activeTeam = 1
	f.overrides.override = &domain.CapacityOverride{Day: day(t), Capacity: 5}
	f.bookings.bookings = []*domain.Booking{
		confirmed(1, at(t, 10, 0), 120),
		confirmed(2, at(t, 10, 0), 120),
		confirmed(3, at(t, 10, 0), 120),
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCheckCapacity_BootstrapWithEmptyRoster(t *testing.T) {
	f := newFixture(t)
	f.users.activeTeam = 0

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCheckCapacity_NoBootstrapWhenTeamFullyUnavailable(t *testing.T) {
	f := newFixture(t)
	// Команда есть, но все недоступны: стартовая вместимость не применяется
	f.users.activeTeam = 2
	f.unavailable.count = 2

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, nil)

	require.NoError(t, err)
	assert.False(t, result.Allowed)
}

func TestCheckCapacity_ExcludesOwnBookingOnReconfirm(t *testing.T) {
	f := newFixture(t)
	f.users.activeTeam = 1
	f.bookings.bookings = []*domain.Booking{
		confirmed(42, at(t, 10, 0), 60),
	}

	result, err := f.service.CheckCapacity(context.Background(), at(t, 10, 0), 60, ptr.Ptr(int64(42)))

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	require.NotNil(t, f.bookings.lastExcludeID)
	assert.Equal(t, int64(42), *f.bookings.lastExcludeID)
}

func TestTeamCapacityForDay(t *testing.T) {
	f := newFixture(t)
	f.unavailable.count = 1

	capacity, err := f.service.TeamCapacityForDay(context.Background(), at(t, 12, 0))

	require.NoError(t, err)
	assert.Equal(t, 2, capacity)
}

func TestTeamCapacityForDay_NeverNegative(t *testing.T) {
	f := newFixture(t)
	f.users.activeTeam = 1
	f.unavailable.count = 3

	capacity, err := f.service.TeamCapacityForDay(context.Background(), at(t, 12, 0))

	require.NoError(t, err)
	assert.Equal(t, 0, capacity)
}

func TestDayBlockingWarning(t *testing.T) {
	f := newFixture(t)

	warning, err := f.service.DayBlockingWarning(context.Background(), at(t, 12, 0))
	require.NoError(t, err)
	assert.Nil(t, warning)

	f.blocks.blocks = []*domain.DayBlock{
		{ID: 1, Day: day(t), FullDay: false, StartAt: ptr.Ptr(at(t, 10, 0)), EndAt: ptr.Ptr(at(t, 12, 0))},
	}
	warning, err = f.service.DayBlockingWarning(context.Background(), at(t, 12, 0))
	require.NoError(t, err)
	require.NotNil(t, warning)

	f.blocks.blocks = []*domain.DayBlock{
		{ID: 2, Day: day(t), FullDay: true, Reason: ptr.Ptr("Инвентаризация")},
	}
	warning, err = f.service.DayBlockingWarning(context.Background(), at(t, 12, 0))
	require.NoError(t, err)
	require.NotNil(t, warning)
	assert.Equal(t, "Инвентаризация", *warning)
}
