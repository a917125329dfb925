package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Actor == nil {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.StartAt.Before(now) {
		return ErrInvalidDate
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Клиент бронирует только на себя
	if !req.Actor.IsAdmin() && req.CustomerID != req.Actor.ID {
		return fmt.Errorf("%w: customers can only book for themselves", ErrInvalidInput)
	}

	return nil
}
