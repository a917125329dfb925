package results

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetResultsPasswordHash(ctx context.Context, id int64, hash string) error
	UpdateSessionStatus(ctx context.Context, id int64, status domain.SessionStatus) error
}

// AttachmentRepository интерфейс репозитория вложений
type AttachmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Attachment, error)
	ListByBooking(ctx context.Context, bookingID int64, attType *domain.AttachmentType) ([]*domain.Attachment, error)
}

// Mailer интерфейс уведомления клиента о готовности результатов
type Mailer interface {
	SendResultsReady(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
