package transition_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	"github.com/mulelash/MB-BeautyService/internal/api/middleware"
	transitionAppointment "github.com/mulelash/MB-BeautyService/internal/usecase/transition_appointment"
)

const (
	msgInvalidRequestBody  = "請求內容格式錯誤"
	msgInvalidID           = "預約編號格式錯誤"
	msgAppointmentNotFound = "找不到此預約"
	msgInvalidTransition   = "目前狀態無法進行此操作"
)

type Handler struct {
	useCase TransitionAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase TransitionAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionAppointment.Request{
		AppointmentID: id,
		TargetStatus:  req.Status,
		OperatorID:    middleware.OperatorFromContext(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, transitionAppointment.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, transitionAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("PATCH /admin/appointments/%d/status - target=%s: %v", id, req.Status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/%d/status - now %s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
