package capacity_overrides

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDay         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidFrom        = "некорректный параметр from"
	msgInvalidTo          = "некорректный параметр to"
	msgInvalidCapacity    = "вместимость не может быть отрицательной"
	msgNotFound           = "переопределение вместимости не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/availability/capacity-overrides?from=&to=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.OptionalTimeParam(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := handlers.OptionalTimeParam(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	overrides, err := h.service.ListCapacityOverrides(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /availability/capacity-overrides - Failed: %v", err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	result := make([]*handlers.CapacityOverrideResponse, 0, len(overrides))
	for _, override := range overrides {
		result = append(result, handlers.FromDomainCapacityOverride(override))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSet PUT /api/v1/availability/capacity-overrides
// Upsert: одна запись на день, повторная установка перезаписывает
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req SetCapacityOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/capacity-overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	override, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /availability/capacity-overrides - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	saved, err := h.service.SetCapacityOverride(r.Context(), override)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/capacity-overrides - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("PUT /availability/capacity-overrides - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("PUT /availability/capacity-overrides - Override set: day=%s, capacity=%d",
		saved.Day.Format(domain.DateFormat), saved.Capacity)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainCapacityOverride(saved))
}

// HandleDelete DELETE /api/v1/availability/capacity-overrides/{day}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	day, err := time.Parse(domain.DateFormat, vars["day"])
	if err != nil {
		h.logger.Warn("DELETE /availability/capacity-overrides/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	if err := h.service.DeleteCapacityOverride(r.Context(), day); err != nil {
		switch {
		case errors.Is(err, availability.ErrOverrideNotFound):
			h.logger.Warn("DELETE /availability/capacity-overrides/{day} - Not found: day=%s", vars["day"])
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/capacity-overrides/{day} - Failed: day=%s, error=%v", vars["day"], err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/capacity-overrides/{day} - Override removed: day=%s", vars["day"])
	w.WriteHeader(http.StatusNoContent)
}
