package upload_attachment

import (
	"context"
	"io"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type AttachmentsService interface {
	Upload(ctx context.Context, bookingID int64, attType domain.AttachmentType, filename string, r io.Reader, viewer *domain.User) (*domain.Attachment, error)
	ListByBooking(ctx context.Context, bookingID int64, attType *domain.AttachmentType) ([]*domain.Attachment, error)
}

type BookingsService interface {
	GetByID(ctx context.Context, id int64, viewer *domain.User) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
