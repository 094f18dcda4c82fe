package manage_gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	galleryService "github.com/mulelash/MB-BeautyService/internal/service/gallery"
)

// uploads larger than this are rejected before decoding
const maxUploadBytes = 10 << 20

const (
	msgInvalidUpload    = "圖片上傳格式錯誤"
	msgUnsupportedImage = "不支援的圖片格式，請上傳 JPEG 或 PNG"
	msgInvalidID        = "圖片編號格式錯誤"
	msgImageNotFound    = "找不到此圖片"
)

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/gallery
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(images))
}

// HandleUpload POST /api/v1/admin/gallery, multipart form with an "image"
// file part and an optional "name" field
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUpload)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	created, err := h.service.Upload(r.Context(), file, name)
	if err != nil {
		if errors.Is(err, galleryService.ErrUnsupportedImage) {
			handlers.RespondBadRequest(w, msgUnsupportedImage)
			return
		}
		h.logger.Error("POST /admin/gallery - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleDelete DELETE /api/v1/admin/gallery/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, galleryService.ErrImageNotFound) {
			handlers.RespondNotFound(w, msgImageNotFound)
			return
		}
		h.logger.Error("DELETE /admin/gallery/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
