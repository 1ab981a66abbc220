package handler

import (
	"net/http"
	"strings"

	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Blobs service.BlobStorage
}

// FileHandler serves uploaded objects when the bucket has no public endpoint
// of its own (file:// and mem:// buckets).
type FileHandler struct {
	blobs service.BlobStorage
}

// NewFileHandler is the constructor for FileHandler.
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{blobs: params.Blobs}
}

// Serve handles GET /files/*.
func (h *FileHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return domainerrors.ErrNotFound.WithDetails("file")
	}

	r, contentType, err := h.blobs.Open(c.Request().Context(), key)
	if err != nil {
		return err
	}
	defer r.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Stream(http.StatusOK, contentType, r)
}
