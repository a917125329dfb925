package capacity_overrides

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type AvailabilityService interface {
	SetCapacityOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error)
	ListCapacityOverrides(ctx context.Context, from, to *time.Time) ([]*domain.CapacityOverride, error)
	DeleteCapacityOverride(ctx context.Context, day time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
