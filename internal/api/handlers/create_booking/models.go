package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	createBooking "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID *int64  `json:"customerId,omitempty"` // Только для админа, по умолчанию - автор запроса
	PackageID  int64   `json:"packageId"`
	StartAt    string  `json:"startAt"` // RFC3339, например "2026-09-15T10:00:00+04:00"
	Location   *string `json:"location,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
// При нехватке мест allowed = false и booking отсутствует
type CreateBookingResponse struct {
	Allowed bool                      `json:"allowed"`
	Reason  *string                   `json:"reason,omitempty"`
	Booking *handlers.BookingResponse `json:"booking,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor *domain.User) (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	customerID := actor.ID
	if r.CustomerID != nil {
		customerID = *r.CustomerID
	}

	return &createBooking.Request{
		Actor:      actor,
		CustomerID: customerID,
		PackageID:  r.PackageID,
		StartAt:    startAt,
		Location:   r.Location,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	result := &CreateBookingResponse{
		Allowed: resp.Allowed,
		Reason:  resp.Reason,
	}
	if resp.Booking != nil {
		result.Booking = handlers.FromDomainBooking(resp.Booking)
	}
	return result
}
