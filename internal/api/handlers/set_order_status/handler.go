package set_order_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	listOrders "github.com/mulelash/MB-BeautyService/internal/api/handlers/list_orders"
	ordersService "github.com/mulelash/MB-BeautyService/internal/service/orders"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidID          = "訂單編號格式錯誤"
	msgInvalidStatus      = "不支援的訂單狀態"
	msgOrderNotFound      = "找不到此訂單"
)

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status         string  `json:"status"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/orders/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/orders/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.SetStatus(r.Context(), id, req.Status, req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, ordersService.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)
		default:
			h.logger.Error("PATCH /admin/orders/%d/status - target=%s: %v", id, req.Status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/orders/%d/status - now %s", id, order.Status)
	handlers.RespondJSON(w, http.StatusOK, listOrders.FromDomain(order))
}
