package manage_promotions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	promotionService "github.com/mulelash/MB-BeautyService/internal/service/promotions"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidID          = "活動編號格式錯誤"
	msgPromotionNotFound  = "找不到此活動"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/promotions. Public callers see active banners only;
// the admin panel passes ?all=true to manage hidden ones too.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	promotions, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /promotions - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(promotions))
}

// HandleCreate POST /api/v1/admin/promotions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req PromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain(0))
	if err != nil {
		if errors.Is(err, promotionService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /admin/promotions - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/promotions/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req PromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, promotionService.ErrPromotionNotFound):
			handlers.RespondNotFound(w, msgPromotionNotFound)
		case errors.Is(err, promotionService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("PUT /admin/promotions/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleDelete DELETE /api/v1/admin/promotions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, promotionService.ErrPromotionNotFound) {
			handlers.RespondNotFound(w, msgPromotionNotFound)
			return
		}
		h.logger.Error("DELETE /admin/promotions/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
