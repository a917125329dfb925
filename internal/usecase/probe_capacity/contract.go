package probe_capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/service/capacity"
)

// CapacityChecker интерфейс проверки доступности студии
type CapacityChecker interface {
	CheckCapacity(ctx context.Context, startAt time.Time, durationMinutes int, excludeBookingID *int64) (*capacity.Result, error)
	DayBlockingWarning(ctx context.Context, day time.Time) (*string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
