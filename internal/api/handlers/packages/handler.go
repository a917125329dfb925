package packages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	packagesService "github.com/m04kA/SMC-PhotoStudioService/internal/service/packages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPackageID   = "некорректный ID пакета"
	msgInvalidInput       = "некорректные параметры пакета"
	msgNotFound           = "пакет съемки не найден"
)

type Handler struct {
	service PackagesService
	logger  Logger
}

func NewHandler(service PackagesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/packages
// Публичный каталог: клиенты видят только видимые пакеты, админ - все
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.UserFromContext(r.Context())
	visibleOnly := viewer == nil || viewer.Role != domain.RoleAdmin

	pkgs, err := h.service.List(r.Context(), visibleOnly)
	if err != nil {
		h.logger.Error("GET /packages - Failed: %v", err)
		handlers.RespondDatabaseUnavailable(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainPackages(pkgs))
}

// HandleGet GET /api/v1/packages/{packageId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	pkg, err := h.service.GetByID(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /packages/{id} - Failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	// Скрытый пакет доступен только админу
	viewer := middleware.UserFromContext(r.Context())
	if !pkg.Visible && (viewer == nil || viewer.Role != domain.RoleAdmin) {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainPackage(pkg))
}

// HandleCreate POST /api/v1/packages
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain(0))
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrInvalidInput):
			h.logger.Warn("POST /packages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /packages - Failed: %v", err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /packages - Package created: package_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainPackage(created))
}

// HandleUpdate PUT /api/v1/packages/{packageId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomain(packageID))
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, packagesService.ErrInvalidInput):
			h.logger.Warn("PUT /packages/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /packages/{id} - Failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("PUT /packages/{id} - Package updated: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainPackage(updated))
}

// HandleDelete DELETE /api/v1/packages/{packageId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	if err := h.service.Delete(r.Context(), packageID); err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /packages/{id} - Failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondDatabaseUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: package_id=%d", packageID)
	w.WriteHeader(http.StatusNoContent)
}
