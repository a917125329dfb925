package reject_booking

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type BookingsService interface {
	Reject(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
