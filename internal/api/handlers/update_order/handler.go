package update_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	listOrders "github.com/mulelash/MB-BeautyService/internal/api/handlers/list_orders"
	"github.com/mulelash/MB-BeautyService/internal/domain"
	ordersService "github.com/mulelash/MB-BeautyService/internal/service/orders"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidID          = "訂單編號格式錯誤"
	msgOrderNotFound      = "找不到此訂單"
)

// UpdateOrderRequest edits the contact and delivery address only; status
// changes go through the status endpoint
type UpdateOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	Address       string `json:"address"`
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

// Handle PATCH /api/v1/admin/orders/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/orders/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.UpdateContact(r.Context(), id, domain.OrderCustomer{
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
		Email: req.CustomerEmail,
	}, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("PATCH /admin/orders/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/orders/%d - contact updated", id)
	handlers.RespondJSON(w, http.StatusOK, listOrders.FromDomain(order))
}
