package attachments

import (
	"context"
	"io"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// AttachmentRepository интерфейс репозитория вложений
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) (*domain.Attachment, error)
	GetByID(ctx context.Context, id int64) (*domain.Attachment, error)
	ListByBooking(ctx context.Context, bookingID int64, attType *domain.AttachmentType) ([]*domain.Attachment, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore интерфейс локального файлового хранилища
type FileStore interface {
	Save(category, filename string, r io.Reader) (string, error)
	Open(key string) (io.ReadCloser, error)
	Remove(key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
