package manage_products

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
	msgInvalidID          = "商品編號格式錯誤"
	msgProductNotFound    = "找不到此商品"
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

// HandleList GET /api/v1/products
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("GET /products - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(products))
}

// HandleCreate POST /api/v1/admin/products
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateProduct(r.Context(), req.ToDomain(0))
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /admin/products - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/products/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateProduct(r.Context(), req.ToDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrProductNotFound):
			handlers.RespondNotFound(w, msgProductNotFound)
		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("PUT /admin/products/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleDelete DELETE /api/v1/admin/products/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, catalogService.ErrProductNotFound) {
			handlers.RespondNotFound(w, msgProductNotFound)
			return
		}
		h.logger.Error("DELETE /admin/products/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
