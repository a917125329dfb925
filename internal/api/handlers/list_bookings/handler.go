package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

const (
	msgInvalidFrom   = "некорректный параметр from"
	msgInvalidTo     = "некорректный параметр to"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?from=&to=&status=
// Клиент видит только свои бронирования, сотрудник - назначенные ему,
// админ - все. Область видимости задает сервис
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	filter := domain.BookingsFilter{}

	from, err := handlers.OptionalTimeParam(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}
	filter.From = from

	to, err := handlers.OptionalTimeParam(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}
	filter.To = to

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := domain.BookingStatus(statusStr)
		if !status.Valid() {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	bookings, err := h.service.List(r.Context(), viewer, filter)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", viewer.ID, err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings: user_id=%d", len(bookings), viewer.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBookings(bookings))
}
