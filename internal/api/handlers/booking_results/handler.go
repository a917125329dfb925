package booking_results

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/results"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет доступа к результатам этого бронирования"
	msgResultsNotReady    = "результаты съемки еще не опубликованы"
	msgWrongPassword      = "неверный пароль доступа к результатам"
	msgWeakPassword       = "пароль слишком короткий"
	msgInvalidToken       = "ссылка недействительна или устарела"
)

type Handler struct {
	results     ResultsService
	attachments AttachmentsService
	logger      Logger
}

func NewHandler(resultsService ResultsService, attachmentsService AttachmentsService, logger Logger) *Handler {
	return &Handler{
		results:     resultsService,
		attachments: attachmentsService,
		logger:      logger,
	}
}

// HandlePublish POST /api/v1/bookings/{bookingId}/results/publish
// Админ задает пароль доступа, клиенту уходит письмо о готовности
func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/results/publish - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.results.Publish(r.Context(), bookingID, req.Password); err != nil {
		switch {
		case errors.Is(err, results.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/results/publish - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, results.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/results/publish - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgWeakPassword)

		default:
			h.logger.Error("POST /bookings/{id}/results/publish - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/results/publish - Results published: booking_id=%d", bookingID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleAccess POST /api/v1/bookings/{bookingId}/results
// Клиент вводит пароль и получает подписанные ссылки на файлы
func (h *Handler) HandleAccess(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/results - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	links, err := h.results.Access(r.Context(), bookingID, req.Password, viewer)
	if err != nil {
		switch {
		case errors.Is(err, results.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, results.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/results - Access denied: booking_id=%d, user_id=%d", bookingID, viewer.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, results.ErrResultsNotReady):
			handlers.RespondNotFound(w, msgResultsNotReady)

		case errors.Is(err, results.ErrWrongPassword):
			h.logger.Warn("POST /bookings/{id}/results - Wrong password: booking_id=%d, user_id=%d", bookingID, viewer.ID)
			handlers.RespondForbidden(w, msgWrongPassword)

		default:
			h.logger.Error("POST /bookings/{id}/results - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/results - Issued %d links: booking_id=%d, user_id=%d",
		len(links), bookingID, viewer.ID)
	handlers.RespondJSON(w, http.StatusOK, FromResultLinks(links))
}

// HandleDownload GET /api/v1/results/download?token=
// Токен самодостаточен, авторизация не требуется
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		handlers.RespondBadRequest(w, msgInvalidToken)
		return
	}

	att, err := h.results.VerifyDownloadToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, results.ErrInvalidToken):
			h.logger.Warn("GET /results/download - Invalid token: %v", err)
			handlers.RespondForbidden(w, msgInvalidToken)

		default:
			h.logger.Error("GET /results/download - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	reader, err := h.attachments.Open(r.Context(), att)
	if err != nil {
		h.logger.Error("GET /results/download - Failed to open file: attachment_id=%d, error=%v", att.ID, err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Name))
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("GET /results/download - Stream interrupted: attachment_id=%d, error=%v", att.ID, err)
		return
	}

	h.logger.Info("GET /results/download - Served attachment_id=%d", att.ID)
}
