package capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// BookingRepo доступ к подтвержденным бронированиям для подсчета пересечений
type BookingRepo interface {
	GetConfirmedStartingBefore(ctx context.Context, endAt time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// DayBlockRepo доступ к блокировкам дней
type DayBlockRepo interface {
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.DayBlock, error)
}

// OverrideRepo доступ к переопределениям вместимости
type OverrideRepo interface {
	GetByDay(ctx context.Context, day time.Time) (*domain.CapacityOverride, error)
}

// UnavailableRepo доступ к записям о недоступности сотрудников
type UnavailableRepo interface {
	CountDistinctOverlapping(ctx context.Context, dayStart, dayEnd time.Time) (int, error)
}

// UserRepo доступ к составу команды
type UserRepo interface {
	CountActiveTeam(ctx context.Context) (int, error)
}
