package export_bookings

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context, viewer *domain.User, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
