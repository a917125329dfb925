package day_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlockID     = "некорректный ID блокировки"
	msgInvalidFrom        = "некорректный параметр from"
	msgInvalidTo          = "некорректный параметр to"
	msgInvalidInput       = "некорректные параметры блокировки"
	msgNotFound           = "блокировка не найдена"
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

// HandleList GET /api/v1/availability/day-blocks?from=&to=
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

	blocks, err := h.service.ListDayBlocks(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /availability/day-blocks - Failed: %v", err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	result := make([]*handlers.DayBlockResponse, 0, len(blocks))
	for _, block := range blocks {
		result = append(result, handlers.FromDomainDayBlock(block))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/availability/day-blocks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateDayBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/day-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /availability/day-blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateDayBlock(r.Context(), block)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability/day-blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/day-blocks - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /availability/day-blocks - Block created: block_id=%d, day=%s",
		created.ID, created.Day.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainDayBlock(created))
}

// HandleDelete DELETE /api/v1/availability/day-blocks/{blockId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/day-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteDayBlock(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockNotFound):
			h.logger.Warn("DELETE /availability/day-blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/day-blocks/{id} - Failed: block_id=%d, error=%v", blockID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/day-blocks/{id} - Block deleted: block_id=%d", blockID)
	w.WriteHeader(http.StatusNoContent)
}
