package create_appointment

import (
	"errors"
	"net/http"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	createAppointment "github.com/mulelash/MB-BeautyService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidDateTime    = "日期或時間格式錯誤"
	msgServiceNotFound    = "找不到此服務項目"
	msgStaffNotFound      = "找不到此服務人員"
	msgStaffNotEligible   = "此服務人員不提供該項服務"
	msgSlotNotBookable    = "此時段無法預約，請重新選擇"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, createAppointment.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, createAppointment.ErrStaffNotEligible):
			handlers.RespondBadRequest(w, msgStaffNotEligible)
		case errors.Is(err, createAppointment.ErrSlotNotBookable):
			handlers.RespondConflict(w, msgSlotNotBookable)
		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("POST /appointments - service=%d staff=%d: %v", req.ServiceID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - created appointment id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
