package list_orders

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	"github.com/mulelash/MB-BeautyService/internal/domain"
	ordersService "github.com/mulelash/MB-BeautyService/internal/service/orders"
)

const (
	msgInvalidParams = "查詢參數格式錯誤"
	msgInvalidID     = "訂單編號格式錯誤"
	msgOrderNotFound = "找不到此訂單"
)

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

// HandleList GET /api/v1/admin/orders?status=&from=&until=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.OrdersFilter{}

	var status *string
	if s := query.Get("status"); s != "" {
		status = &s
	}

	if s := query.Get("from"); s != "" {
		from, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		filter.FromDate = &from
	}

	if s := query.Get("until"); s != "" {
		until, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		filter.UntilDate = &until
	}

	result, err := h.service.List(r.Context(), status, filter)
	if err != nil {
		if errors.Is(err, ordersService.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/orders - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

// HandleGet GET /api/v1/admin/orders/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersService.ErrOrderNotFound) {
			handlers.RespondNotFound(w, msgOrderNotFound)
			return
		}
		h.logger.Error("GET /admin/orders/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(order))
}
