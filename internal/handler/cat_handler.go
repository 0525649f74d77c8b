package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cattery/internal/domain"
	"cattery/internal/export"
	"cattery/internal/service"
)

// CatHandler handles cat management endpoints.
type CatHandler struct {
	catService service.CatService
	now        func() time.Time
}

// NewCatHandler creates a new CatHandler.
func NewCatHandler(catService service.CatService) *CatHandler {
	return &CatHandler{catService: catService, now: time.Now}
}

func catFilterFromQuery(c *gin.Context) domain.CatFilter {
	includeHidden, _ := strconv.ParseBool(c.DefaultQuery("include_hidden", "false"))
	return domain.CatFilter{
		Breed:         c.Query("breed"),
		CatcafeStatus: c.Query("catcafe_status"),
		StoreName:     c.Query("store_name"),
		IncludeHidden: includeHidden,
	}
}

// List handles GET /api/v1/admin/cats
// @Summary List cats
// @Description List cats, newest first. Hidden cats are excluded unless include_hidden=true.
// @Tags cats
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param breed query string false "Breed value"
// @Param catcafe_status query string false "Cat cafe status value"
// @Param store_name query string false "Store name"
// @Param include_hidden query bool false "Include cats with visible=false" default(false)
// @Success 200 {object} Response{data=[]domain.Cat,meta=PagMeta}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /admin/cats [get]
func (h *CatHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	cats, total, err := h.catService.List(c.Request.Context(), catFilterFromQuery(c), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, cats, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/admin/cats/:id
// @Summary Get cat
// @Tags cats
// @Produce json
// @Param id path string true "Cat ID (UUID)"
// @Success 200 {object} Response{data=domain.Cat}
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Cat not found"
// @Security BearerAuth
// @Router /admin/cats/{id} [get]
func (h *CatHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "cat")
	if !ok {
		return
	}

	cat, err := h.catService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cat)
}

// Create handles POST /api/v1/admin/cats
// @Summary Create cat
// @Description Breed is required. Birthday must be YYYY-MM-DD, price must be positive,
// @Description and breed, store and status must exist in the configured vocabulary.
// @Tags cats
// @Accept json
// @Produce json
// @Param request body service.CreateCatInput true "Cat"
// @Success 201 {object} Response{data=domain.Cat}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /admin/cats [post]
func (h *CatHandler) Create(c *gin.Context) {
	var input service.CreateCatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cat, err := h.catService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cat)
}

// Update handles PUT /api/v1/admin/cats/:id
// @Summary Update cat
// @Description Partial update. Omitted fields are kept; null clears a nullable field.
// @Tags cats
// @Accept json
// @Produce json
// @Param id path string true "Cat ID (UUID)"
// @Param request body service.UpdateCatInput true "Fields to change"
// @Success 200 {object} Response{data=domain.Cat}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Cat not found"
// @Security BearerAuth
// @Router /admin/cats/{id} [put]
func (h *CatHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "cat")
	if !ok {
		return
	}

	var input service.UpdateCatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cat, err := h.catService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cat)
}

// Delete handles DELETE /api/v1/admin/cats/:id
// @Summary Delete cat
// @Tags cats
// @Produce json
// @Param id path string true "Cat ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Cat not found"
// @Security BearerAuth
// @Router /admin/cats/{id} [delete]
func (h *CatHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "cat")
	if !ok {
		return
	}

	if err := h.catService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "cat deleted"})
}

// BulkDelete handles DELETE /api/v1/admin/cats/bulk
// @Summary Delete several cats
// @Tags cats
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Cat IDs"
// @Success 200 {object} Response{data=BulkDeleteResponse}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /admin/cats/bulk [delete]
func (h *CatHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	n, err := h.catService.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, BulkDeleteResponse{Deleted: n})
}

// Export handles GET /api/v1/admin/cats/export
// @Summary Export cats
// @Description Download every cat matching the filters as CSV or XLSX.
// @Tags cats
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Param breed query string false "Breed value"
// @Param catcafe_status query string false "Cat cafe status value"
// @Param store_name query string false "Store name"
// @Param include_hidden query bool false "Include hidden cats" default(false)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Security BearerAuth
// @Router /admin/cats/export [get]
func (h *CatHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	cats, err := h.catService.ListAll(c.Request.Context(), catFilterFromQuery(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, cats); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.Filename("cats", format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
