package probe_capacity

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// UseCase use case предварительной проверки доступности времени
// Информационная проверка перед отправкой заявки, ничего не бронирует
type UseCase struct {
	capacity CapacityChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(capacity CapacityChecker, logger Logger) *UseCase {
	return &UseCase{capacity: capacity, logger: logger}
}

// Execute проверяет доступность интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	check, err := uc.capacity.CheckCapacity(ctx, req.StartAt, req.DurationMinutes, nil)
	if err != nil {
		uc.logger.Error("ProbeCapacity: capacity check failed: %v", err)
		return nil, fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
	}

	warning, err := uc.capacity.DayBlockingWarning(ctx, req.StartAt)
	if err != nil {
		uc.logger.Error("ProbeCapacity: day warning failed: %v", err)
		return nil, fmt.Errorf("%w: day warning failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ProbeCapacity: startAt=%s duration=%d allowed=%t",
		req.StartAt.Format("2006-01-02 15:04"), req.DurationMinutes, check.Allowed)

	return &Response{
		Allowed:    check.Allowed,
		Reason:     check.Reason,
		DayWarning: warning,
	}, nil
}
