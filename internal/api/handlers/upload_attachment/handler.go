package upload_attachment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/attachments"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/bookings"
)

// Лимит размера multipart запроса
const maxUploadBytes = 50 << 20 // 50 MB

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidForm      = "некорректная multipart форма"
	msgMissingFile      = "файл не передан, ожидается поле file"
	msgInvalidType      = "некорректный тип вложения"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет прав на загрузку этого типа вложений"
)

type Handler struct {
	attachments AttachmentsService
	bookings    BookingsService
	logger      Logger
}

func NewHandler(attachmentsService AttachmentsService, bookingsService BookingsService, logger Logger) *Handler {
	return &Handler{
		attachments: attachmentsService,
		bookings:    bookingsService,
		logger:      logger,
	}
}

// HandleUpload POST /api/v1/bookings/{bookingId}/attachments
// Multipart форма: file - содержимое, type - CUSTOMER_REFERENCE или SESSION_RESULT
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /bookings/{id}/attachments - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/attachments - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	attType := domain.AttachmentType(r.FormValue("type"))

	created, err := h.attachments.Upload(r.Context(), bookingID, attType, header.Filename, file, viewer)
	if err != nil {
		switch {
		case errors.Is(err, attachments.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/attachments - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, attachments.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/attachments - Access denied: booking_id=%d, user_id=%d", bookingID, viewer.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, attachments.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/attachments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidType)

		default:
			h.logger.Error("POST /bookings/{id}/attachments - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/attachments - Uploaded: attachment_id=%d, booking_id=%d", created.ID, bookingID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainAttachment(created))
}

// HandleList GET /api/v1/bookings/{bookingId}/attachments?type=
// Доступ к списку совпадает с доступом к самому бронированию
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if _, err := h.bookings.GetByID(r.Context(), bookingID, viewer); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{id}/attachments - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	var attType *domain.AttachmentType
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		t := domain.AttachmentType(typeStr)
		if !t.Valid() {
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		attType = &t
	}

	list, err := h.attachments.ListByBooking(r.Context(), bookingID, attType)
	if err != nil {
		h.logger.Error("GET /bookings/{id}/attachments - Failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	result := make([]*handlers.AttachmentResponse, 0, len(list))
	for _, att := range list {
		result = append(result, handlers.FromDomainAttachment(att))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
