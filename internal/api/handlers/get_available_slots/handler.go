package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	"github.com/mulelash/MB-BeautyService/internal/domain"
	getSlots "github.com/mulelash/MB-BeautyService/internal/usecase/get_available_slots"
)

const (
	msgInvalidParams    = "查詢參數格式錯誤"
	msgInvalidDate      = "日期格式錯誤，請使用 YYYY-MM-DD"
	msgServiceNotFound  = "找不到此服務項目"
	msgStaffNotFound    = "找不到此服務人員"
	msgStaffNotEligible = "此服務人員不提供該項服務"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?serviceId=&staffId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - invalid serviceId %q", query.Get("serviceId"))
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	staffID, err := strconv.ParseInt(query.Get("staffId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - invalid staffId %q", query.Get("staffId"))
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - invalid date %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, getSlots.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, getSlots.ErrStaffNotEligible):
			handlers.RespondBadRequest(w, msgStaffNotEligible)
		case errors.Is(err, getSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /slots - service=%d staff=%d: %v", serviceID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
