package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/user"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	mailer      Mailer
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID с проверкой прав доступа
// Админ видит всё, сотрудник - назначенные ему, клиент - только свои
func (s *Service) GetByID(ctx context.Context, id int64, viewer *domain.User) (*domain.Booking, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, viewer.ID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkViewAccess(booking, viewer); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", viewer.ID, id)
		return nil, err
	}

	return booking, nil
}

// List получает бронирования, видимые пользователю
// Админ получает все, сотрудник - назначенные ему, клиент - свои
func (s *Service) List(ctx context.Context, viewer *domain.User, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	switch viewer.Role {
	case domain.RoleAdmin:
		// Без дополнительных ограничений
	case domain.RoleTeam:
		filter.AssignedTeamID = &viewer.ID
	default:
		filter.CustomerID = &viewer.ID
	}

	s.logger.Info("List: fetching bookings for user=%d role=%s", viewer.ID, viewer.Role)

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", viewer.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Assign назначает сотрудника на бронирование или снимает назначение
// При назначении статус становится ASSIGNED, при снятии - PENDING_REVIEW
// Назначенному сотруднику отправляется письмо
func (s *Service) Assign(ctx context.Context, bookingID int64, teamID *int64) (*domain.Booking, error) {
	s.logger.Info("Assign: booking id=%d team=%v", bookingID, teamID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Assign: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Assign: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
	}

	newStatus := domain.StatusPendingReview
	var teamMember *domain.User

	if teamID != nil {
		teamMember, err = s.userRepo.GetByID(ctx, *teamID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				s.logger.Warn("Assign: team user id=%d not found", *teamID)
				return nil, ErrUserNotFound
			}
			s.logger.Error("Assign: repository error for user id=%d: %v", *teamID, err)
			return nil, fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
		}
		if !teamMember.IsTeam() || !teamMember.Active {
			s.logger.Warn("Assign: user id=%d is not an active team member", *teamID)
			return nil, ErrNotTeamMember
		}
		newStatus = domain.StatusAssigned
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("Assign: invalid transition %s -> %s for booking id=%d", booking.Status, newStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.Assign(ctx, bookingID, teamID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Assign: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	booking.AssignedTeamID = teamID
	if teamMember != nil {
		booking.AssignedTeamName = &teamMember.Name
	} else {
		booking.AssignedTeamName = nil
	}

	// Письмо не должно откатывать назначение
	if teamMember != nil {
		if err := s.mailer.SendAssignment(ctx, booking, teamMember); err != nil {
			s.logger.Warn("Assign: failed to send assignment email for booking id=%d: %v", bookingID, err)
		}
	}

	s.logger.Info("Assign: booking id=%d is now %s", bookingID, newStatus)
	return booking, nil
}

// Reject отклоняет бронирование и уведомляет клиента
func (s *Service) Reject(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	s.logger.Info("Reject: booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Reject: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reject: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	if !booking.Status.CanTransitionTo(domain.StatusRejected) {
		s.logger.Warn("Reject: invalid transition %s -> REJECTED for booking id=%d", booking.Status, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusRejected); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reject: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusRejected

	if err := s.mailer.SendRejection(ctx, booking); err != nil {
		s.logger.Warn("Reject: failed to send rejection email for booking id=%d: %v", bookingID, err)
	}

	s.logger.Info("Reject: booking id=%d rejected", bookingID)
	return booking, nil
}

// UpdateSessionStatus переводит сессию съемки в следующий статус
// Доступно админу и назначенному сотруднику, переходы только вперед
func (s *Service) UpdateSessionStatus(ctx context.Context, bookingID int64, next domain.SessionStatus, viewer *domain.User) (*domain.Booking, error) {
	s.logger.Info("UpdateSessionStatus: booking id=%d -> %s by user=%d", bookingID, next, viewer.ID)

	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown session status %q", ErrInvalidInput, next)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateSessionStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateSessionStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateSessionStatus - repository error: %v", ErrInternal, err)
	}

	if !viewer.IsAdmin() {
		if !viewer.IsTeam() || booking.AssignedTeamID == nil || *booking.AssignedTeamID != viewer.ID {
			s.logger.Warn("UpdateSessionStatus: access denied for user=%d to booking id=%d", viewer.ID, bookingID)
			return nil, ErrAccessDenied
		}
	}

	if !booking.SessionStatus.CanTransitionTo(next) {
		s.logger.Warn("UpdateSessionStatus: invalid transition %s -> %s for booking id=%d", booking.SessionStatus, next, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateSessionStatus(ctx, bookingID, next); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateSessionStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateSessionStatus - repository error: %v", ErrInternal, err)
	}

	booking.SessionStatus = next

	s.logger.Info("UpdateSessionStatus: booking id=%d is now %s", bookingID, next)
	return booking, nil
}

// checkViewAccess проверяет право пользователя видеть бронирование
func (s *Service) checkViewAccess(booking *domain.Booking, viewer *domain.User) error {
	if viewer.IsAdmin() {
		return nil
	}
	if viewer.IsTeam() && booking.AssignedTeamID != nil && *booking.AssignedTeamID == viewer.ID {
		return nil
	}
	if booking.CustomerID == viewer.ID {
		return nil
	}
	return ErrAccessDenied
}
