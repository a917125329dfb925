package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ptr"
)

// UseCase use case подтверждения бронирования админом
// Подтверждение занимает место, поэтому вместимость перепроверяется
// в сериализуемой транзакции с исключением самого бронирования
type UseCase struct {
	bookingRepo BookingRepository
	capacity    CapacityChecker
	mailer      Mailer
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	capacity CapacityChecker,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		capacity:    capacity,
		mailer:      mailer,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute подтверждает бронирование
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking id=%d", bookingID)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmBooking: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if !booking.Status.CanTransitionTo(domain.StatusConfirmed) {
			uc.logger.Warn("ConfirmBooking: invalid transition %s -> CONFIRMED for booking id=%d", booking.Status, bookingID)
			return ErrInvalidTransition
		}

		// Бронирование не должно считаться против самого себя
		check, err := uc.capacity.CheckCapacity(txCtx, booking.StartAt, booking.DurationMinutes, ptr.Ptr(bookingID))
		if err != nil {
			uc.logger.Error("ConfirmBooking: capacity check failed for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
		}

		if !check.Allowed {
			uc.logger.Info("ConfirmBooking: denied for booking id=%d: %v", bookingID, check.Reason)
			result = &Response{Allowed: false, Reason: check.Reason, Booking: booking}
			return nil
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusConfirmed); err != nil {
			uc.logger.Error("ConfirmBooking: failed to update status for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		result = &Response{Allowed: true, Booking: booking}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Письмо отправляется после фиксации транзакции
	if result.Allowed {
		if err := uc.mailer.SendConfirmation(ctx, result.Booking); err != nil {
			uc.logger.Warn("ConfirmBooking: failed to send confirmation email for booking id=%d: %v", bookingID, err)
		}
		uc.logger.Info("ConfirmBooking: booking id=%d confirmed", bookingID)
	}

	return result, nil
}
