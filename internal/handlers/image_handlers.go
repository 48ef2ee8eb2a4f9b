package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"artvault/internal/common"
	"artvault/internal/models"
	"artvault/internal/services"
)

// ImageHandlers handles HTTP requests for the image pipeline
type ImageHandlers struct {
	imageService services.ImageService
}

// NewImageHandlers creates a new image handlers instance
func NewImageHandlers(imageService services.ImageService) *ImageHandlers {
	return &ImageHandlers{imageService: imageService}
}

// Upload handles POST /images/upload. The multipart form carries one or more
// files under "file" plus an optional "category" field used as the storage
// folder. Files upload in parallel; each entry of the response reports its own
// success or failure.
func (h *ImageHandlers) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Multipart form required")
	}

	files := form.File["file"]
	if len(files) == 0 {
		files = form.File["files"]
	}
	if len(files) == 0 {
		return common.SendValidationError(c, "file", "At least one file is required")
	}

	var category *string
	if v := c.FormValue("category"); v != "" {
		category = &v
	}

	uploads := make([]services.ImageUpload, 0, len(files))
	opened := make([]io.Closer, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			return common.SendServerError(c, "Failed to read uploaded file")
		}
		opened = append(opened, src)
		uploads = append(uploads, services.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Category:    category,
			Reader:      src,
		})
	}

	results := h.imageService.UploadBatch(ctx, uploads)

	// Single-file uploads keep the original flat response shape.
	if len(results) == 1 {
		if results[0].Error != "" {
			return echo.NewHTTPError(http.StatusBadRequest, results[0].Error)
		}
		return c.JSON(http.StatusCreated, results[0].Image)
	}

	status := http.StatusCreated
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed == len(results) {
		status = http.StatusBadRequest
	} else if failed > 0 {
		status = http.StatusMultiStatus
	}

	return c.JSON(status, map[string]interface{}{
		"results": results,
		"failed":  failed,
	})
}

// List handles GET /images
func (h *ImageHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := pagination(c)

	var category *string
	if v := c.QueryParam("category"); v != "" {
		category = &v
	}

	images, err := h.imageService.List(ctx, category, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list images")
	}
	if images == nil {
		images = []*models.Image{}
	}

	return c.JSON(http.StatusOK, images)
}

// Delete handles DELETE /images/:id
func (h *ImageHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "image id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.imageService.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Image")
		}
		return common.SendServerError(c, "Failed to delete image")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Image deleted successfully",
	})
}
