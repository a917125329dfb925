package assign_booking

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type BookingsService interface {
	Assign(ctx context.Context, bookingID int64, teamID *int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
