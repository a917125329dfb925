package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	packageRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/photopackage"
)

// Service управление пакетами съемки
type Service struct {
	packages PackageRepository
	logger   Logger
}

// NewService создает сервис пакетов
func NewService(packages PackageRepository, logger Logger) *Service {
	return &Service{packages: packages, logger: logger}
}

// Create создает пакет съемки
func (s *Service) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if err := s.validate(pkg); err != nil {
		return nil, err
	}

	created, err := s.packages.Create(ctx, pkg)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created package id=%d name=%s", created.ID, created.Name)
	return created, nil
}

// GetByID получает пакет по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return pkg, nil
}

// List получает пакеты
// Клиенты видят только видимые, админ - все
func (s *Service) List(ctx context.Context, visibleOnly bool) ([]*domain.Package, error) {
	result, err := s.packages.List(ctx, visibleOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// Update обновляет пакет съемки
func (s *Service) Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if err := s.validate(pkg); err != nil {
		return nil, err
	}

	if err := s.packages.Update(ctx, pkg); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Update: package id=%d not found", pkg.ID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", pkg.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated package id=%d", pkg.ID)
	return pkg, nil
}

// Delete удаляет пакет съемки
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Delete: package id=%d not found", id)
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted package id=%d", id)
	return nil
}

func (s *Service) validate(pkg *domain.Package) error {
	if pkg.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if pkg.DurationMinutes < domain.MinDurationMinutes || pkg.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if pkg.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
