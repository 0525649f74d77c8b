package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"cattery/internal/domain"
	"cattery/internal/service"
)

// UploadHandler handles image uploads.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Batch handles POST /api/v1/admin/uploads/batch
// @Summary Upload images
// @Description Upload several images at once. Each file succeeds or fails on its own;
// @Description the response is 201 when all succeed and 207 otherwise.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images (jpg, png, webp)"
// @Param upload_type formData string false "cat_image or store_image" default(cat_image)
// @Success 201 {object} Response{data=[]service.UploadResult}
// @Success 207 {object} Response{data=[]service.UploadResult}
// @Failure 400 {object} ErrorResponseBody "Missing files or invalid upload type"
// @Security BearerAuth
// @Router /admin/uploads/batch [post]
func (h *UploadHandler) Batch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart form is required")
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["files[]"]
	}
	if len(fileHeaders) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "at least one file is required in 'files' field")
		return
	}

	uploadType := domain.UploadType(c.DefaultPostForm("upload_type", string(domain.UploadTypeCatImage)))

	inputs := make([]service.UploadFileInput, 0, len(fileHeaders))
	openFiles := make([]multipart.File, 0, len(fileHeaders))
	defer func() {
		for _, f := range openFiles {
			_ = f.Close()
		}
	}()
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "FILE_READ_ERROR", "failed to read uploaded file")
			return
		}
		openFiles = append(openFiles, f)
		inputs = append(inputs, service.UploadFileInput{File: f, Header: fh})
	}

	results, err := h.uploadService.UploadBatch(c.Request.Context(), uploadType, inputs)
	if err != nil {
		HandleError(c, err)
		return
	}

	for _, r := range results {
		if !r.Success {
			c.JSON(http.StatusMultiStatus, APIResponse{Success: true, Data: results})
			return
		}
	}
	RespondCreated(c, results)
}
