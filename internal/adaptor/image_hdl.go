package adaptor

import (
	"net/http"
	"strings"

	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ImageHandler serves stored blobs over HTTP. Used with the disk driver;
// the S3 driver hands out object URLs directly.
type ImageHandler struct {
	blobs storage.BlobStore
	log   *zap.Logger
}

func NewImageHandler(blobs storage.BlobStore, log *zap.Logger) *ImageHandler {
	return &ImageHandler{
		blobs: blobs,
		log:   log.With(zap.String("handler", "image")),
	}
}

// Serve handles GET /images/{name}
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseNotFound(w, "Image not found")
		return
	}

	data, err := h.blobs.Get(r.Context(), name)
	if err != nil {
		utils.ResponseNotFound(w, "Image not found")
		return
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(name, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		contentType = "image/jpeg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}
