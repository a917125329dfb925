package calendar_events

import (
	"net/http"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/calendar"
)

const (
	msgMissingRange = "параметры start и end обязательны"
	msgInvalidStart = "некорректный параметр start"
	msgInvalidEnd   = "некорректный параметр end"
	msgInvalidRange = "start должен быть раньше end"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events?start=&end=&teamOnly=
// Формат параметров совместим с FullCalendar: start и end задают видимый диапазон
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	query := r.URL.Query()
	startStr := query.Get("start")
	endStr := query.Get("end")
	if startStr == "" || endStr == "" {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := handlers.ParseTimeParam(startStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	end, err := handlers.ParseTimeParam(endStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}

	if !start.Before(end) {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	events, err := h.service.Events(r.Context(), calendar.EventsQuery{
		From:     start,
		To:       end,
		TeamOnly: query.Get("teamOnly") == "true",
		Viewer:   viewer,
	})
	if err != nil {
		h.logger.Error("GET /calendar/events - Failed: user_id=%d, error=%v", viewer.ID, err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	h.logger.Info("GET /calendar/events - %d events: user_id=%d", len(events), viewer.ID)
	handlers.RespondJSON(w, http.StatusOK, events)
}
