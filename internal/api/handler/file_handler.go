package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// FileHandler streams stored uploads back by id.
type FileHandler struct {
	blobs ports.BlobStore
}

func NewFileHandler(blobs ports.BlobStore) *FileHandler {
	return &FileHandler{blobs: blobs}
}

// Get handles GET /files/:id.
//
// @Summary      Download an uploaded file
// @Tags         files
// @Produce      octet-stream
// @Param        id   path  string  true  "File id"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [get]
func (h *FileHandler) Get(c echo.Context) error {
	blob, err := h.blobs.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer blob.Body.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(blob.Size, 10))
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Cache-Control", "private, max-age=86400")
	return c.Stream(http.StatusOK, blob.ContentType, blob.Body)
}
