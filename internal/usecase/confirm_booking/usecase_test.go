package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/capacity"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeCapacity struct {
	result        capacity.Result
	lastExcludeID *int64
}

func (f *fakeCapacity) CheckCapacity(_ context.Context, _ time.Time, _ int, excludeID *int64) (*capacity.Result, error) {
	f.lastExcludeID = excludeID
	r := f.result
	return &r, nil
}

type fakeMailer struct {
	confirmations int
}

func (f *fakeMailer) SendConfirmation(_ context.Context, _ *domain.Booking) error {
	f.confirmations++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(t *testing.T) (*UseCase, *fakeBookingRepo, *fakeCapacity, *fakeMailer) {
	t.Helper()

	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		1: {
			ID:              1,
			CustomerID:      100,
			StartAt:         time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          domain.StatusAssigned,
			CustomerEmail:   "customer@example.com",
		},
	}}
	checker := &fakeCapacity{result: capacity.Result{Allowed: true}}
	mailer := &fakeMailer{}

	return NewUseCase(bookings, checker, mailer, passthroughTxManager{}, nopLogger{}), bookings, checker, mailer
}

func TestExecute_Confirms(t *testing.T) {
	uc, bookings, checker, mailer := newUseCase(t)

	resp, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, domain.StatusConfirmed, bookings.byID[1].Status)
	assert.Equal(t, 1, mailer.confirmations)
	// Бронирование исключается из подсчета против самого себя
	require.NotNil(t, checker.lastExcludeID)
	assert.Equal(t, int64(1), *checker.lastExcludeID)
}

func TestExecute_CapacityDenialKeepsStatus(t *testing.T) {
	uc, bookings, checker, mailer := newUseCase(t)
	checker.result = capacity.Result{Allowed: false, Reason: ptr.Ptr("На выбранное время нет свободных мест")}

	resp, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, domain.StatusAssigned, bookings.byID[1].Status)
	assert.Equal(t, 0, mailer.confirmations)
}

func TestExecute_ReconfirmAllowed(t *testing.T) {
	uc, bookings, _, _ := newUseCase(t)
	bookings.byID[1].Status = domain.StatusConfirmed

	resp, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
}

func TestExecute_RejectedCannotBeConfirmed(t *testing.T) {
	uc, bookings, _, _ := newUseCase(t)
	bookings.byID[1].Status = domain.StatusRejected

	_, err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.Execute(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
