package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	packageRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/photopackage"
)

// UseCase use case для создания заявки на съемку
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	capacity     CapacityChecker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	capacity CapacityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		capacity:     capacity,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка идут в сериализуемой транзакции,
// чтобы параллельные заявки не обошли лимит
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: actor=%d, customer=%d, package=%d, startAt=%s",
		req.Actor.ID, req.CustomerID, req.PackageID, req.StartAt.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет съемки
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 3. Скрытый пакет доступен только админу
	if !pkg.Visible && !req.Actor.IsAdmin() {
		uc.logger.Warn("CreateBooking: package id=%d is hidden", req.PackageID)
		return nil, ErrPackageUnavailable
	}

	var result *Response

	// 4. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		check, err := uc.capacity.CheckCapacity(txCtx, req.StartAt, pkg.DurationMinutes, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: capacity check failed: %v", err)
			return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
		}

		if !check.Allowed {
			uc.logger.Info("CreateBooking: denied for startAt=%s: %v",
				req.StartAt.Format("2006-01-02 15:04"), check.Reason)
			result = &Response{Allowed: false, Reason: check.Reason}
			return nil
		}

		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			PackageID:       req.PackageID,
			StartAt:         req.StartAt,
			DurationMinutes: pkg.DurationMinutes,
			Status:          domain.StatusPendingReview,
			SessionStatus:   domain.SessionBooked,
			Location:        req.Location,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		created.PackageName = pkg.Name

		result = &Response{Allowed: true, Booking: created}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Allowed {
		uc.logger.Info("CreateBooking: successfully created booking id=%d", result.Booking.ID)
	}

	return result, nil
}
