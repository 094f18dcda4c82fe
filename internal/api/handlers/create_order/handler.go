package create_order

import (
	"errors"
	"net/http"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	createOrder "github.com/mulelash/MB-BeautyService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgEmptyOrder         = "購物車是空的"
	msgProductNotFound    = "找不到此商品"
	msgOutOfStock         = "商品目前缺貨"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrEmptyOrder):
			handlers.RespondBadRequest(w, msgEmptyOrder)
		case errors.Is(err, createOrder.ErrProductNotFound):
			handlers.RespondNotFound(w, msgProductNotFound)
		case errors.Is(err, createOrder.ErrProductOutOfStock):
			handlers.RespondConflict(w, msgOutOfStock)
		case errors.Is(err, createOrder.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("POST /orders - %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - created order id=%d code=%s", result.ID, result.PublicCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
