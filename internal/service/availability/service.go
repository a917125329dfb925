package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	capacityoverrideRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/capacityoverride"
	dayblockRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/dayblock"
	teamunavailableRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/teamunavailable"
	userRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/user"
)

// Service управление блокировками дней, переопределениями вместимости
// и недоступностью сотрудников
type Service struct {
	blocks      DayBlockRepository
	overrides   OverrideRepository
	unavailable UnavailableRepository
	users       UserRepository
	location    *time.Location
	logger      Logger
}

// NewService создает сервис управления доступностью
func NewService(
	blocks DayBlockRepository,
	overrides OverrideRepository,
	unavailable UnavailableRepository,
	users UserRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		blocks:      blocks,
		overrides:   overrides,
		unavailable: unavailable,
		users:       users,
		location:    location,
		logger:      logger,
	}
}

// CreateDayBlock создает блокировку дня
// Для частичной блокировки обязательны обе границы внутри того же дня
func (s *Service) CreateDayBlock(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error) {
	block.Day = s.normalizeDay(block.Day)

	if !block.FullDay {
		if block.StartAt == nil || block.EndAt == nil {
			return nil, fmt.Errorf("%w: partial block requires startAt and endAt", ErrInvalidInput)
		}
		if !block.StartAt.Before(*block.EndAt) {
			return nil, fmt.Errorf("%w: startAt must be before endAt", ErrInvalidInput)
		}
		if !s.normalizeDay(*block.StartAt).Equal(block.Day) || !s.normalizeDay(block.EndAt.Add(-time.Nanosecond)).Equal(block.Day) {
			return nil, fmt.Errorf("%w: block interval must stay within the blocked day", ErrInvalidInput)
		}
	}
	if block.Reason != nil && len(*block.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	created, err := s.blocks.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateDayBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateDayBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDayBlock: created block id=%d day=%s fullDay=%t", created.ID, created.Day.Format(domain.DateFormat), created.FullDay)
	return created, nil
}

// ListDayBlocks получает блокировки за период
func (s *Service) ListDayBlocks(ctx context.Context, from, to *time.Time) ([]*domain.DayBlock, error) {
	blocks, err := s.blocks.ListRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListDayBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDayBlocks - repository error: %v", ErrInternal, err)
	}
	return blocks, nil
}

// DeleteDayBlock удаляет блокировку дня
func (s *Service) DeleteDayBlock(ctx context.Context, id int64) error {
	if err := s.blocks.Delete(ctx, id); err != nil {
		if errors.Is(err, dayblockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteDayBlock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteDayBlock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteDayBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDayBlock: deleted block id=%d", id)
	return nil
}

// SetCapacityOverride задает явную вместимость на день
// Ноль запрещает бронирования на весь день
func (s *Service) SetCapacityOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error) {
	if override.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	if override.Reason != nil && len(*override.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}
	override.Day = s.normalizeDay(override.Day)

	saved, err := s.overrides.Upsert(ctx, override)
	if err != nil {
		s.logger.Error("SetCapacityOverride: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetCapacityOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetCapacityOverride: day=%s capacity=%d", saved.Day.Format(domain.DateFormat), saved.Capacity)
	return saved, nil
}

// ListCapacityOverrides получает переопределения за период
func (s *Service) ListCapacityOverrides(ctx context.Context, from, to *time.Time) ([]*domain.CapacityOverride, error) {
	overrides, err := s.overrides.ListRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListCapacityOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCapacityOverrides - repository error: %v", ErrInternal, err)
	}
	return overrides, nil
}

// DeleteCapacityOverride удаляет переопределение на день
func (s *Service) DeleteCapacityOverride(ctx context.Context, day time.Time) error {
	normalized := s.normalizeDay(day)

	if err := s.overrides.DeleteByDay(ctx, normalized); err != nil {
		if errors.Is(err, capacityoverrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteCapacityOverride: override for day=%s not found", normalized.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteCapacityOverride: repository error for day=%s: %v", normalized.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: DeleteCapacityOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCapacityOverride: deleted override for day=%s", normalized.Format(domain.DateFormat))
	return nil
}

// CreateUnavailable создает запись о недоступности сотрудника
func (s *Service) CreateUnavailable(ctx context.Context, entry *domain.TeamUnavailable) (*domain.TeamUnavailable, error) {
	if !entry.StartAt.Before(entry.EndAt) {
		return nil, fmt.Errorf("%w: startAt must be before endAt", ErrInvalidInput)
	}
	if entry.Reason != nil && len(*entry.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	member, err := s.users.GetByID(ctx, entry.TeamUserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("CreateUnavailable: user id=%d not found", entry.TeamUserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("CreateUnavailable: repository error for user id=%d: %v", entry.TeamUserID, err)
		return nil, fmt.Errorf("%w: CreateUnavailable - repository error: %v", ErrInternal, err)
	}
	if !member.IsTeam() {
		s.logger.Warn("CreateUnavailable: user id=%d is not a team member", entry.TeamUserID)
		return nil, ErrNotTeamMember
	}

	created, err := s.unavailable.Create(ctx, entry)
	if err != nil {
		s.logger.Error("CreateUnavailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateUnavailable - repository error: %v", ErrInternal, err)
	}
	created.TeamUserName = member.Name

	s.logger.Info("CreateUnavailable: created entry id=%d for user=%d", created.ID, created.TeamUserID)
	return created, nil
}

// ListUnavailable получает записи о недоступности
// Сотрудник видит только свои записи, фильтр подставляется выше
func (s *Service) ListUnavailable(ctx context.Context, filter domain.TeamUnavailableFilter) ([]*domain.TeamUnavailable, error) {
	entries, err := s.unavailable.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListUnavailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUnavailable - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

// DeleteUnavailable удаляет запись о недоступности
func (s *Service) DeleteUnavailable(ctx context.Context, id int64) error {
	if err := s.unavailable.Delete(ctx, id); err != nil {
		if errors.Is(err, teamunavailableRepo.ErrEntryNotFound) {
			s.logger.Warn("DeleteUnavailable: entry id=%d not found", id)
			return ErrEntryNotFound
		}
		s.logger.Error("DeleteUnavailable: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteUnavailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteUnavailable: deleted entry id=%d", id)
	return nil
}

// normalizeDay приводит момент времени к полуночи дня в часовом поясе студии
func (s *Service) normalizeDay(t time.Time) time.Time {
	local := t.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
}
