package confirm_booking

import (
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/confirm_booking"
)

// ConfirmBookingResponse HTTP response model
// При нехватке мест allowed = false, статус бронирования не меняется
type ConfirmBookingResponse struct {
	Allowed bool                      `json:"allowed"`
	Reason  *string                   `json:"reason,omitempty"`
	Booking *handlers.BookingResponse `json:"booking,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	result := &ConfirmBookingResponse{
		Allowed: resp.Allowed,
		Reason:  resp.Reason,
	}
	if resp.Booking != nil {
		result.Booking = handlers.FromDomainBooking(resp.Booking)
	}
	return result
}
