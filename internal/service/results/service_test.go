package results

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	attachmentRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/attachment"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	byID map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) SetResultsPasswordHash(_ context.Context, id int64, hash string) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.ResultsPasswordHash = &hash
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

type fakeAttachmentRepo struct {
	attachments []*domain.Attachment
}

func (f *fakeAttachmentRepo) GetByID(_ context.Context, id int64) (*domain.Attachment, error) {
	for _, att := range f.attachments {
		if att.ID == id {
			return att, nil
		}
	}
	return nil, attachmentRepo.ErrAttachmentNotFound
}

func (f *fakeAttachmentRepo) ListByBooking(_ context.Context, bookingID int64, attType *domain.AttachmentType) ([]*domain.Attachment, error) {
	result := make([]*domain.Attachment, 0)
	for _, att := range f.attachments {
		if att.BookingID != bookingID {
			continue
		}
		if attType != nil && att.Type != *attType {
			continue
		}
		result = append(result, att)
	}
	return result, nil
}

type fakeMailer struct {
	resultsReady int
}

func (f *fakeMailer) SendResultsReady(_ context.Context, _ *domain.Booking) error {
	f.resultsReady++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) (*Service, *fakeBookingRepo, *fakeAttachmentRepo, *fakeMailer) {
	t.Helper()

	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		1: {
			ID:            1,
			CustomerID:    100,
			Status:        domain.StatusConfirmed,
			SessionStatus: domain.SessionInProgress,
			CustomerEmail: "customer@example.com",
		},
	}}
	attachments := &fakeAttachmentRepo{attachments: []*domain.Attachment{
		{ID: 10, BookingID: 1, Type: domain.AttachmentSessionResult, Name: "photo-001.jpg", FileKey: "results/a.jpg"},
		{ID: 11, BookingID: 1, Type: domain.AttachmentCustomerReference, Name: "ref.jpg", FileKey: "refs/b.jpg"},
	}}
	mailer := &fakeMailer{}

	service := NewService(bookings, attachments, mailer, nopLogger{}, "http://studio.local", "test-secret", time.Hour)
	return service, bookings, attachments, mailer
}

func TestPublishAndAccess(t *testing.T) {
	service, bookings, _, mailer := newFixture(t)
	customer := &domain.User{ID: 100, Role: domain.RoleCustomer}

	err := service.Publish(context.Background(), 1, "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, 1, mailer.resultsReady)
	assert.Equal(t, domain.SessionWaitingResults, bookings.byID[1].SessionStatus)
	require.NotNil(t, bookings.byID[1].ResultsPasswordHash)

	links, err := service.Access(context.Background(), 1, "secret-pass", customer)
	require.NoError(t, err)
	// Референсы клиента в ссылки не попадают
	require.Len(t, links, 1)
	assert.Equal(t, int64(10), links[0].AttachmentID)
	assert.Contains(t, links[0].URL, "/api/v1/results/download?token=")
}

func TestAccess_WrongPassword(t *testing.T) {
	service, bookings, _, _ := newFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	bookings.byID[1].ResultsPasswordHash = ptrStr(string(hash))

	_, err = service.Access(context.Background(), 1, "wrong", &domain.User{ID: 100, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAccess_NotReadyAndDenied(t *testing.T) {
	service, bookings, _, _ := newFixture(t)

	_, err := service.Access(context.Background(), 1, "any", &domain.User{ID: 100, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrResultsNotReady)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	bookings.byID[1].ResultsPasswordHash = ptrStr(string(hash))

	_, err = service.Access(context.Background(), 1, "right", &domain.User{ID: 999, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestVerifyDownloadToken(t *testing.T) {
	service, _, _, _ := newFixture(t)

	token, err := service.signToken(10, 1, time.Now().Add(time.Hour))
	require.NoError(t, err)

	att, err := service.VerifyDownloadToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), att.ID)

	// Просроченный токен отклоняется
	expired, err := service.signToken(10, 1, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = service.VerifyDownloadToken(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Токен на референс клиента не дает скачивания
	refToken, err := service.signToken(11, 1, time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = service.VerifyDownloadToken(context.Background(), refToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.VerifyDownloadToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func ptrStr(s string) *string { return &s }
