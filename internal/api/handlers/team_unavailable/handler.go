package team_unavailable

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEntryID     = "некорректный ID записи"
	msgInvalidFrom        = "некорректный параметр from"
	msgInvalidTo          = "некорректный параметр to"
	msgInvalidInput       = "некорректные параметры недоступности"
	msgUserNotFound       = "сотрудник не найден"
	msgNotTeamMember      = "пользователь не является сотрудником"
	msgForbiddenOther     = "сотрудник может отмечать недоступность только для себя"
	msgNotFound           = "запись о недоступности не найдена"
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

// HandleList GET /api/v1/availability/team-unavailable?from=&to=
// Сотрудник видит только свои записи, админ - все
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	filter := domain.TeamUnavailableFilter{}
	if viewer.Role == domain.RoleTeam {
		filter.TeamUserID = &viewer.ID
	}

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

	entries, err := h.service.ListUnavailable(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /availability/team-unavailable - Failed: user_id=%d, error=%v", viewer.ID, err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	result := make([]*handlers.TeamUnavailableResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, handlers.FromDomainTeamUnavailable(entry))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/availability/team-unavailable
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	var req CreateUnavailableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/team-unavailable - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := req.ToDomain(viewer.ID)
	if err != nil {
		h.logger.Warn("POST /availability/team-unavailable - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сотрудник не может создавать записи за других
	if viewer.Role == domain.RoleTeam && entry.TeamUserID != viewer.ID {
		h.logger.Warn("POST /availability/team-unavailable - Team member tried to create for another user: user_id=%d", viewer.ID)
		handlers.RespondForbidden(w, msgForbiddenOther)
		return
	}

	created, err := h.service.CreateUnavailable(r.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrUserNotFound):
			h.logger.Warn("POST /availability/team-unavailable - User not found: team_user_id=%d", entry.TeamUserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, availability.ErrNotTeamMember):
			h.logger.Warn("POST /availability/team-unavailable - Not a team member: team_user_id=%d", entry.TeamUserID)
			handlers.RespondBadRequest(w, msgNotTeamMember)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability/team-unavailable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/team-unavailable - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /availability/team-unavailable - Entry created: entry_id=%d, team_user_id=%d",
		created.ID, created.TeamUserID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainTeamUnavailable(created))
}

// HandleDelete DELETE /api/v1/availability/team-unavailable/{entryId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	vars := mux.Vars(r)
	entryID, err := strconv.ParseInt(vars["entryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/team-unavailable/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	// Сотрудник может удалять только свои записи
	if viewer.Role == domain.RoleTeam {
		entries, err := h.service.ListUnavailable(r.Context(), domain.TeamUnavailableFilter{TeamUserID: &viewer.ID})
		if err != nil {
			h.logger.Error("DELETE /availability/team-unavailable/{id} - Failed to check ownership: %v", err)
			handlers.RespondDatabaseUnavailable(w)
			return
		}
		owned := false
		for _, entry := range entries {
			if entry.ID == entryID {
				owned = true
				break
			}
		}
		if !owned {
			h.logger.Warn("DELETE /availability/team-unavailable/{id} - Not owner: entry_id=%d, user_id=%d", entryID, viewer.ID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
	}

	if err := h.service.DeleteUnavailable(r.Context(), entryID); err != nil {
		switch {
		case errors.Is(err, availability.ErrEntryNotFound):
			h.logger.Warn("DELETE /availability/team-unavailable/{id} - Not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/team-unavailable/{id} - Failed: entry_id=%d, error=%v", entryID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/team-unavailable/{id} - Entry deleted: entry_id=%d", entryID)
	w.WriteHeader(http.StatusNoContent)
}
