package confirm_booking

import "github.com/m04kA/SMC-PhotoStudioService/internal/domain"

// Response модель ответа
// При нехватке мест Allowed = false и статус бронирования не меняется
type Response struct {
	Allowed bool
	Reason  *string
	Booking *domain.Booking
}
