package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// DayBlockRepository интерфейс репозитория блокировок дней
type DayBlockRepository interface {
	Create(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error)
	ListRange(ctx context.Context, from, to *time.Time) ([]*domain.DayBlock, error)
	Delete(ctx context.Context, id int64) error
}

// OverrideRepository интерфейс репозитория переопределений вместимости
type OverrideRepository interface {
	Upsert(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error)
	ListRange(ctx context.Context, from, to *time.Time) ([]*domain.CapacityOverride, error)
	DeleteByDay(ctx context.Context, day time.Time) error
}

// UnavailableRepository интерфейс репозитория недоступности сотрудников
type UnavailableRepository interface {
	Create(ctx context.Context, entry *domain.TeamUnavailable) (*domain.TeamUnavailable, error)
	List(ctx context.Context, filter domain.TeamUnavailableFilter) ([]*domain.TeamUnavailable, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
