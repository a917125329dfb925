package probe_capacity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	probeCapacity "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/probe_capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartAt     = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase ProbeCapacityUseCase
	logger  Logger
}

func NewHandler(useCase ProbeCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/capacity
// Публичная проверка доступности, ничего не бронирует
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ProbeCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/capacity - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, probeCapacity.ErrInvalidInput):
			h.logger.Warn("POST /bookings/capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/capacity - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
