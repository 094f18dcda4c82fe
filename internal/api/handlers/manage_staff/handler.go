package manage_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	staffService "github.com/mulelash/MB-BeautyService/internal/service/staff"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidID          = "服務人員編號格式錯誤"
	msgStaffNotFound      = "找不到此服務人員"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/staff
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(members))
}

// HandleCreate POST /api/v1/admin/staff
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain(0))
	if err != nil {
		if errors.Is(err, staffService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /admin/staff - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/staff/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, staffService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("PUT /admin/staff/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleDelete DELETE /api/v1/admin/staff/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, staffService.ErrStaffNotFound) {
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}
		h.logger.Error("DELETE /admin/staff/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
