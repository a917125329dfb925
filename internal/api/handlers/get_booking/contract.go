package get_booking

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type BookingsService interface {
	GetByID(ctx context.Context, id int64, viewer *domain.User) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
