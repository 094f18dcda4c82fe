package manage_settings

import (
	"errors"
	"net/http"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	settingsService "github.com/mulelash/MB-BeautyService/internal/service/settings"
)

const msgInvalidRequestBody = "請求內容格式錯誤"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandlePublicGet GET /api/v1/settings
func (h *Handler) HandlePublicGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, PublicFromDomain(settings))
}

// HandleGet GET /api/v1/admin/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomain(settings))
}

// HandleUpdate PUT /api/v1/admin/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("PUT /admin/settings - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
