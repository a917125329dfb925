package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	packageRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/photopackage"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/capacity"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ptr"
)

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = int64(len(f.created) + 1)
	f.created = append(f.created, booking)
	return booking, nil
}

type fakePackageRepo struct {
	byID map[int64]*domain.Package
}

func (f *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	pkg, ok := f.byID[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}
	return pkg, nil
}

type fakeCapacity struct {
	result capacity.Result
	calls  int
}

func (f *fakeCapacity) CheckCapacity(_ context.Context, _ time.Time, _ int, _ *int64) (*capacity.Result, error) {
	f.calls++
	r := f.result
	return &r, nil
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(t *testing.T) (*UseCase, *fakeBookingRepo, *fakeCapacity, *passthroughTxManager) {
	t.Helper()

	bookings := &fakeBookingRepo{}
	packages := &fakePackageRepo{byID: map[int64]*domain.Package{
		1: {ID: 1, Name: "Портретная съемка", DurationMinutes: 90, Visible: true},
		2: {ID: 2, Name: "Корпоративный пакет", DurationMinutes: 240, Visible: false},
	}}
	checker := &fakeCapacity{result: capacity.Result{Allowed: true}}
	tx := &passthroughTxManager{}

	uc := NewUseCase(bookings, packages, checker, tx, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	return uc, bookings, checker, tx
}

func validRequest() *Request {
	return &Request{
		Actor:      &domain.User{ID: 100, Role: domain.RoleCustomer},
		CustomerID: 100,
		PackageID:  1,
		StartAt:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestExecute_CreatesPendingReview(t *testing.T) {
	uc, bookings, checker, tx := newUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusPendingReview, resp.Booking.Status)
	assert.Equal(t, domain.SessionBooked, resp.Booking.SessionStatus)
	assert.Equal(t, 90, resp.Booking.DurationMinutes)
	assert.Equal(t, "Портретная съемка", resp.Booking.PackageName)
	assert.Len(t, bookings.created, 1)
	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_CapacityDenialIsNotAnError(t *testing.T) {
	uc, bookings, checker, _ := newUseCase(t)
	checker.result = capacity.Result{Allowed: false, Reason: ptr.Ptr("На выбранное время нет свободных мест")}

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	require.NotNil(t, resp.Reason)
	assert.Nil(t, resp.Booking)
	assert.Empty(t, bookings.created)
}

func TestExecute_HiddenPackage(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	req := validRequest()
	req.PackageID = 2
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageUnavailable)

	// Админ бронирует скрытый пакет от имени клиента
	req.Actor = &domain.User{ID: 1, Role: domain.RoleAdmin}
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	req := validRequest()
	req.StartAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = validRequest()
	req.CustomerID = 200
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.PackageID = 404
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
