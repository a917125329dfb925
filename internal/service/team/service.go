package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	userRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/user"
)

// Service управление составом команды студии
type Service struct {
	users  UserRepository
	logger Logger
}

// NewService создает сервис команды
func NewService(users UserRepository, logger Logger) *Service {
	return &Service{users: users, logger: logger}
}

// CreateMember добавляет сотрудника в команду
func (s *Service) CreateMember(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(u.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	u.Role = domain.RoleTeam
	u.Active = true

	created, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("CreateMember: email %s already in use", u.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("CreateMember: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMember: created team member id=%d", created.ID)
	return created, nil
}

// ListMembers возвращает сотрудников команды
func (s *Service) ListMembers(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	role := domain.RoleTeam
	members, err := s.users.List(ctx, &role, activeOnly)
	if err != nil {
		s.logger.Error("ListMembers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMembers - repository error: %v", ErrInternal, err)
	}
	return members, nil
}

// SetActive включает или выключает сотрудника
// Выключенный сотрудник перестает учитываться во вместимости
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SetActive: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("SetActive: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetActive: reload error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: user id=%d active=%t", id, active)
	return u, nil
}
