package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/user"
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

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.AssignedTeamID != nil {
			if b.AssignedTeamID == nil || *b.AssignedTeamID != *filter.AssignedTeamID {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Assign(_ context.Context, id int64, teamID *int64, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.AssignedTeamID = teamID
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) UpdateSessionStatus(_ context.Context, id int64, status domain.SessionStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.SessionStatus = status
	return nil
}

type fakeUserRepo struct {
	byID map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeMailer struct {
	assignments int
	rejections  int
}

func (f *fakeMailer) SendAssignment(_ context.Context, _ *domain.Booking, _ *domain.User) error {
	f.assignments++
	return nil
}

func (f *fakeMailer) SendRejection(_ context.Context, _ *domain.Booking) error {
	f.rejections++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *fakeBookingRepo, *fakeUserRepo, *fakeMailer) {
	t.Helper()

	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		1: {
			ID:              1,
			CustomerID:      100,
			PackageID:       1,
			StartAt:         time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          domain.StatusPendingReview,
			SessionStatus:   domain.SessionBooked,
			CustomerEmail:   "customer@example.com",
		},
	}}
	users := &fakeUserRepo{byID: map[int64]*domain.User{
		7: {ID: 7, Name: "Мария", Role: domain.RoleTeam, Active: true},
		8: {ID: 8, Name: "Олег", Role: domain.RoleTeam, Active: false},
		9: {ID: 9, Name: "Ирина", Role: domain.RoleCustomer, Active: true},
	}}
	mailer := &fakeMailer{}

	return NewService(bookings, users, mailer, nopLogger{}), bookings, users, mailer
}

var (
	admin    = &domain.User{ID: 1, Role: domain.RoleAdmin}
	teamUser = &domain.User{ID: 7, Role: domain.RoleTeam, Active: true}
	customer = &domain.User{ID: 100, Role: domain.RoleCustomer}
	stranger = &domain.User{ID: 999, Role: domain.RoleCustomer}
)

func TestGetByID_Access(t *testing.T) {
	service, repo, _, _ := newService(t)
	repo.byID[1].AssignedTeamID = ptr.Ptr(int64(7))

	_, err := service.GetByID(context.Background(), 1, admin)
	assert.NoError(t, err)

	_, err = service.GetByID(context.Background(), 1, teamUser)
	assert.NoError(t, err)

	_, err = service.GetByID(context.Background(), 1, customer)
	assert.NoError(t, err)

	_, err = service.GetByID(context.Background(), 1, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = service.GetByID(context.Background(), 404, admin)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAssign_SetsStatusAndSendsEmail(t *testing.T) {
	service, repo, _, mailer := newService(t)

	booking, err := service.Assign(context.Background(), 1, ptr.Ptr(int64(7)))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, booking.Status)
	require.NotNil(t, booking.AssignedTeamID)
	assert.Equal(t, int64(7), *booking.AssignedTeamID)
	assert.Equal(t, 1, mailer.assignments)
	assert.Equal(t, domain.StatusAssigned, repo.byID[1].Status)
}

func TestAssign_ClearReturnsToPendingReview(t *testing.T) {
	service, repo, _, mailer := newService(t)
	repo.byID[1].Status = domain.StatusAssigned
	repo.byID[1].AssignedTeamID = ptr.Ptr(int64(7))

	booking, err := service.Assign(context.Background(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, booking.Status)
	assert.Nil(t, booking.AssignedTeamID)
	assert.Equal(t, 0, mailer.assignments)
}

func TestAssign_RejectsNonTeamAndInactive(t *testing.T) {
	service, _, _, _ := newService(t)

	_, err := service.Assign(context.Background(), 1, ptr.Ptr(int64(9)))
	assert.ErrorIs(t, err, ErrNotTeamMember)

	_, err = service.Assign(context.Background(), 1, ptr.Ptr(int64(8)))
	assert.ErrorIs(t, err, ErrNotTeamMember)

	_, err = service.Assign(context.Background(), 1, ptr.Ptr(int64(404)))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReject_FromRejectedFails(t *testing.T) {
	service, repo, _, mailer := newService(t)

	booking, err := service.Reject(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, booking.Status)
	assert.Equal(t, 1, mailer.rejections)

	repo.byID[1].Status = domain.StatusRejected
	_, err = service.Reject(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateSessionStatus_ForwardOnly(t *testing.T) {
	service, repo, _, _ := newService(t)
	repo.byID[1].AssignedTeamID = ptr.Ptr(int64(7))

	booking, err := service.UpdateSessionStatus(context.Background(), 1, domain.SessionInProgress, teamUser)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionInProgress, booking.SessionStatus)

	// Откат назад запрещен
	_, err = service.UpdateSessionStatus(context.Background(), 1, domain.SessionBooked, teamUser)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Прыжок вперед через статус разрешен
	booking, err = service.UpdateSessionStatus(context.Background(), 1, domain.SessionCompleted, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, booking.SessionStatus)
}

func TestUpdateSessionStatus_AccessDenied(t *testing.T) {
	service, repo, _, _ := newService(t)
	repo.byID[1].AssignedTeamID = ptr.Ptr(int64(8))

	// Сотрудник, не назначенный на бронирование
	_, err := service.UpdateSessionStatus(context.Background(), 1, domain.SessionInProgress, teamUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Клиент не управляет сессией
	_, err = service.UpdateSessionStatus(context.Background(), 1, domain.SessionInProgress, customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_RoleScoped(t *testing.T) {
	service, repo, _, _ := newService(t)
	repo.byID[2] = &domain.Booking{ID: 2, CustomerID: 200, AssignedTeamID: ptr.Ptr(int64(7)), Status: domain.StatusConfirmed}

	all, err := service.List(context.Background(), admin, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := service.List(context.Background(), customer, domain.BookingsFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].ID)

	assigned, err := service.List(context.Background(), teamUser, domain.BookingsFilter{})
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, int64(2), assigned[0].ID)
}
