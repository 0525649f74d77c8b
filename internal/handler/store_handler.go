package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cattery/internal/service"
)

// StoreHandler handles store management endpoints.
type StoreHandler struct {
	storeService service.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// List handles GET /api/v1/admin/stores
// @Summary List stores
// @Tags stores
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param active_only query bool false "Only active stores" default(false)
// @Success 200 {object} Response{data=[]domain.Store,meta=PagMeta}
// @Security BearerAuth
// @Router /admin/stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	stores, total, err := h.storeService.List(c.Request.Context(), activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, stores, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/admin/stores/:id
// @Summary Get store
// @Tags stores
// @Produce json
// @Param id path string true "Store ID (UUID)"
// @Success 200 {object} Response{data=domain.Store}
// @Failure 404 {object} ErrorResponseBody "Store not found"
// @Security BearerAuth
// @Router /admin/stores/{id} [get]
func (h *StoreHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "store")
	if !ok {
		return
	}

	store, err := h.storeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, store)
}

// Create handles POST /api/v1/admin/stores
// @Summary Create store
// @Tags stores
// @Accept json
// @Produce json
// @Param request body service.CreateStoreInput true "Store"
// @Success 201 {object} Response{data=domain.Store}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Duplicate store name"
// @Security BearerAuth
// @Router /admin/stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var input service.CreateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, store)
}

// Update handles PUT /api/v1/admin/stores/:id
// @Summary Update store
// @Tags stores
// @Accept json
// @Produce json
// @Param id path string true "Store ID (UUID)"
// @Param request body service.UpdateStoreInput true "Fields to change"
// @Success 200 {object} Response{data=domain.Store}
// @Failure 404 {object} ErrorResponseBody "Store not found"
// @Security BearerAuth
// @Router /admin/stores/{id} [put]
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "store")
	if !ok {
		return
	}

	var input service.UpdateStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	store, err := h.storeService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, store)
}

// Delete handles DELETE /api/v1/admin/stores/:id
// @Summary Delete store
// @Tags stores
// @Param id path string true "Store ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Security BearerAuth
// @Router /admin/stores/{id} [delete]
func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "store")
	if !ok {
		return
	}

	if err := h.storeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "store deleted"})
}

// BulkDelete handles DELETE /api/v1/admin/stores/bulk
// @Summary Delete several stores
// @Tags stores
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Store IDs"
// @Success 200 {object} Response{data=BulkDeleteResponse}
// @Security BearerAuth
// @Router /admin/stores/bulk [delete]
func (h *StoreHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	n, err := h.storeService.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, BulkDeleteResponse{Deleted: n})
}
