package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	catalogService "github.com/mulelash/MB-BeautyService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidID          = "服務編號格式錯誤"
	msgServiceNotFound    = "找不到此服務項目"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(services))
}

// HandleCreate POST /api/v1/admin/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateService(r.Context(), req.ToDomain(0))
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /admin/services - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/services/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateService(r.Context(), req.ToDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("PUT /admin/services/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleDelete DELETE /api/v1/admin/services/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /admin/services/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
