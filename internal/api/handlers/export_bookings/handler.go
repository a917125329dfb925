package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

const (
	msgInvalidFrom   = "некорректный параметр from"
	msgInvalidTo     = "некорректный параметр to"
	msgInvalidStatus = "некорректный статус бронирования"
	msgExportFailed  = "не удалось сформировать отчет"
)

const sheetName = "Бронирования"

var columnTitles = []string{
	"ID", "Клиент", "Пакет", "Сотрудник", "Начало", "Длительность, мин",
	"Статус", "Статус съемки", "Локация", "Создано",
}

type Handler struct {
	service  BookingsService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingsService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/bookings/export?from=&to=&status=
// Выгружает бронирования в XLSX, время приводится к часовому поясу студии
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
		h.logger.Error("GET /admin/bookings/export - Failed to list bookings: %v", err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	file, err := h.buildWorkbook(bookings)
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to build workbook: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgExportFailed)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().In(h.location).Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(w); err != nil {
		h.logger.Warn("GET /admin/bookings/export - Stream interrupted: %v", err)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %d bookings", len(bookings))
}

func (h *Handler) buildWorkbook(bookings []*domain.Booking) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	for i, title := range columnTitles {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := file.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
	}

	for rowIdx, b := range bookings {
		teamName := ""
		if b.AssignedTeamName != nil {
			teamName = *b.AssignedTeamName
		}
		location := ""
		if b.Location != nil {
			location = *b.Location
		}

		values := []interface{}{
			b.ID,
			b.CustomerName,
			b.PackageName,
			teamName,
			b.StartAt.In(h.location).Format("02.01.2006 15:04"),
			b.DurationMinutes,
			string(b.Status),
			string(b.SessionStatus),
			location,
			b.CreatedAt.In(h.location).Format("02.01.2006 15:04"),
		}

		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
		}
	}

	return file, nil
}
