package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	"github.com/mulelash/MB-BeautyService/internal/domain"
	appointmentsService "github.com/mulelash/MB-BeautyService/internal/service/appointments"
)

const (
	msgInvalidParams       = "查詢參數格式錯誤"
	msgInvalidID           = "預約編號格式錯誤"
	msgAppointmentNotFound = "找不到此預約"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/appointments?status=&staffId=&date=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.AppointmentsFilter{}

	var status *string
	if s := query.Get("status"); s != "" {
		status = &s
	}

	if s := query.Get("staffId"); s != "" {
		staffID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		filter.StaffID = &staffID
	}

	if s := query.Get("date"); s != "" {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		filter.Date = &date
	}

	filter.OnlyOpen = query.Get("open") == "true"

	result, err := h.service.List(r.Context(), status, filter)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/appointments - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

// HandleGet GET /api/v1/admin/appointments/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	apt, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrAppointmentNotFound) {
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("GET /admin/appointments/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(apt))
}
