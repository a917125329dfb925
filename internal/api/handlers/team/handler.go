package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	teamService "github.com/m04kA/SMC-PhotoStudioService/internal/service/team"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID сотрудника"
	msgInvalidInput       = "некорректные данные сотрудника"
	msgDuplicateEmail     = "сотрудник с таким email уже существует"
	msgNotFound           = "сотрудник не найден"
)

type Handler struct {
	service TeamService
	logger  Logger
}

func NewHandler(service TeamService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/team?activeOnly=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	members, err := h.service.ListMembers(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /team - Failed: %v", err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	result := make([]*handlers.UserResponse, 0, len(members))
	for _, member := range members {
		result = append(result, handlers.FromDomainUser(member))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/team
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /team - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateMember(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, teamService.ErrDuplicateEmail):
			h.logger.Warn("POST /team - Duplicate email: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, teamService.ErrInvalidInput):
			h.logger.Warn("POST /team - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /team - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /team - Member created: user_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainUser(created))
}

// HandleSetActive PATCH /api/v1/team/{userId}/active
// Деактивация скрывает сотрудника из расчета вместимости, история остается
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /team/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.SetActive(r.Context(), userID, req.Active)
	if err != nil {
		switch {
		case errors.Is(err, teamService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /team/{id}/active - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("PATCH /team/{id}/active - Member updated: user_id=%d, active=%t", userID, req.Active)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainUser(updated))
}
