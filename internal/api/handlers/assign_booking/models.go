package assign_booking

// AssignBookingRequest HTTP request model
// teamUserId = null снимает назначение и возвращает заявку на рассмотрение
type AssignBookingRequest struct {
	TeamUserID *int64 `json:"teamUserId"`
}
