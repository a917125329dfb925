package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/capacityoverride"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ptr"
)

// Сообщения отказа, возвращаемые клиенту как reason
const (
	msgDayBlocked      = "Этот день закрыт для бронирования"
	msgIntervalBlocked = "Выбранное время попадает в заблокированный интервал"
	msgNoCapacity      = "На выбранное время нет свободных мест"
)

// Result результат проверки вместимости
// Отказ по вместимости является нормальным исходом, а не ошибкой
type Result struct {
	Allowed bool
	Reason  *string
}

/// Service вычисляет доступность студии: блокировки дней, эффективную
// вместимость и пересечения с подтвержденными бронированиями
// Сервис только читает данные, все ошибки хранилища пробрасываются наверх
type Service struct {
	bookings    BookingRepo
	blocks      DayBlockRepo
	overrides   OverrideRepo
	unavailable UnavailableRepo
	users       UserRepo
	location    *time.Location
}

// NewService создает сервис вместимости
// location задает часовой пояс студии для определения границ дня
func NewService(
	bookings BookingRepo,
	blocks DayBlockRepo,
	overrides OverrideRepo,
	unavailable UnavailableRepo,
	users UserRepo,
	location *time.Location,
) *Service {
	return &Service{
		bookings:    bookings,
		blocks:      blocks,
		overrides:   overrides,
		unavailable: unavailable,
		users:       users,
		location:    location,
	}
}

// CheckCapacity проверяет, можно ли разместить бронирование на интервал
// [startAt, startAt+durationMinutes)
// excludeBookingID исключает бронирование из подсчета пересечений,
// используется при повторном подтверждении
func (s *Service) CheckCapacity(ctx context.Context, startAt time.Time, durationMinutes int, excludeBookingID *int64) (*Result, error) {
	endAt := startAt.Add(time.Duration(durationMinutes) * time.Minute)
	dayStart, dayEnd := s.dayBounds(startAt)

	blocked, reason, err := s.checkBlocks(ctx, startAt, endAt, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("CheckCapacity - check blocks: %w", err)
	}
	if blocked {
		return &Result{Allowed: false, Reason: reason}, nil
	}

	effectiveCapacity, err := s.TeamCapacityForDay(ctx, startAt)
	if err != nil {
		return nil, fmt.Errorf("CheckCapacity - effective capacity: %w", err)
	}

	confirmed, err := s.bookings.GetConfirmedStartingBefore(ctx, endAt, excludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("CheckCapacity - load confirmed bookings: %w", err)
	}

	overlapping := 0
	for _, b := range confirmed {
		if b.EndAt().After(startAt) {
			overlapping++
		}
	}

	if overlapping >= effectiveCapacity {
		return &Result{Allowed: false, Reason: ptr.Ptr(msgNoCapacity)}, nil
	}

	return &Result{Allowed: true}, nil
}

// TeamCapacityForDay возвращает эффективную вместимость на день:
// переопределение, если задано, иначе число активных сотрудников минус
// недоступные в этот день
// Когда активных сотрудников нет вовсе, действует стартовая вместимость
func (s *Service) TeamCapacityForDay(ctx context.Context, day time.Time) (int, error) {
	dayStart, dayEnd := s.dayBounds(day)

	override, err := s.overrides.GetByDay(ctx, dayStart)
	if err != nil && !errors.Is(err, capacityoverride.ErrOverrideNotFound) {
		return 0, fmt.Errorf("TeamCapacityForDay - get override: %w", err)
	}
	if override != nil {
		if override.Capacity < 0 {
			return 0, nil
		}
		return override.Capacity, nil
	}

	teamCount, err := s.users.CountActiveTeam(ctx)
	if err != nil {
		return 0, fmt.Errorf("TeamCapacityForDay - count active team: %w", err)
	}

	unavailableCount, err := s.unavailable.CountDistinctOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("TeamCapacityForDay - count unavailable: %w", err)
	}

	capacity := teamCount - unavailableCount
	if capacity < 0 {
		capacity = 0
	}
	if capacity == 0 && teamCount == 0 {
		capacity = domain.BootstrapCapacity
	}

	return capacity, nil
}

// DayBlockingWarning возвращает предупреждение о блокировках на день
// для информационной проверки перед отправкой заявки
// Предупреждение никогда не запрещает отправку само по себе
func (s *Service) DayBlockingWarning(ctx context.Context, day time.Time) (*string, error) {
	dayStart, _ := s.dayBounds(day)

	blocks, err := s.blocks.ListForDay(ctx, dayStart, dayStart)
	if err != nil {
		return nil, fmt.Errorf("DayBlockingWarning - list blocks: %w", err)
	}

	for _, block := range blocks {
		if block.FullDay {
			if block.Reason != nil {
				return block.Reason, nil
			}
			return ptr.Ptr(msgDayBlocked), nil
		}
	}

	if len(blocks) > 0 {
		return ptr.Ptr(msgIntervalBlocked), nil
	}

	return nil, nil
}

// checkBlocks проверяет кандидата против блокировок дня
// Пересечение считается по полуоткрытым интервалам: совпадающие границы
// пересечением не являются
func (s *Service) checkBlocks(ctx context.Context, startAt, endAt, dayStart, dayEnd time.Time) (bool, *string, error) {
	blocks, err := s.blocks.ListForDay(ctx, dayStart, dayStart)
	if err != nil {
		return false, nil, err
	}

	for _, block := range blocks {
		if block.FullDay {
			if block.Reason != nil {
				return true, block.Reason, nil
			}
			return true, ptr.Ptr(msgDayBlocked), nil
		}

		blockStart, blockEnd := block.Bounds(dayStart, dayEnd)
		if startAt.Before(blockEnd) && endAt.After(blockStart) {
			if block.Reason != nil {
				return true, block.Reason, nil
			}
			return true, ptr.Ptr(msgIntervalBlocked), nil
		}
	}

	return false, nil, nil
}

// dayBounds возвращает границы календарного дня в часовом поясе студии:
// полночь и 23:59 того же дня
func (s *Service) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(s.location)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
	dayEnd := dayStart.Add(24*time.Hour - time.Minute)
	return dayStart, dayEnd
}
