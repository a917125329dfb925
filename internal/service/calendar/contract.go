package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// BookingRepo доступ к бронированиям за период
type BookingRepo interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// DayBlockRepo доступ к блокировкам дней за период
type DayBlockRepo interface {
	ListRange(ctx context.Context, from, to *time.Time) ([]*domain.DayBlock, error)
}
