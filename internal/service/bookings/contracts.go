package bookings

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Assign(ctx context.Context, id int64, teamID *int64, status domain.BookingStatus) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateSessionStatus(ctx context.Context, id int64, status domain.SessionStatus) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Mailer интерфейс отправки уведомлений клиентам и сотрудникам
type Mailer interface {
	SendAssignment(ctx context.Context, booking *domain.Booking, teamMember *domain.User) error
	SendRejection(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
