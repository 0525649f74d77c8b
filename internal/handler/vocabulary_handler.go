package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cattery/internal/service"
)

// CatBreedHandler handles the breed vocabulary.
type CatBreedHandler struct {
	breeds service.CatBreedService
}

// NewCatBreedHandler creates a new CatBreedHandler.
func NewCatBreedHandler(breeds service.CatBreedService) *CatBreedHandler {
	return &CatBreedHandler{breeds: breeds}
}

// List handles GET /api/v1/admin/cat-breeds
// @Summary List breeds
// @Tags vocabulary
// @Produce json
// @Success 200 {object} Response{data=[]domain.CatBreed}
// @Security BearerAuth
// @Router /admin/cat-breeds [get]
func (h *CatBreedHandler) List(c *gin.Context) {
	breeds, err := h.breeds.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, breeds)
}

// Create handles POST /api/v1/admin/cat-breeds
// @Summary Create breed
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body service.CatBreedInput true "Breed"
// @Success 201 {object} Response{data=domain.CatBreed}
// @Failure 409 {object} ErrorResponseBody "Duplicate value"
// @Security BearerAuth
// @Router /admin/cat-breeds [post]
func (h *CatBreedHandler) Create(c *gin.Context) {
	var input service.CatBreedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	breed, err := h.breeds.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, breed)
}

// Update handles PUT /api/v1/admin/cat-breeds/:id
// @Summary Update breed
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param id path string true "Breed ID (UUID)"
// @Param request body service.CatBreedInput true "Breed"
// @Success 200 {object} Response{data=domain.CatBreed}
// @Security BearerAuth
// @Router /admin/cat-breeds/{id} [put]
func (h *CatBreedHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "breed")
	if !ok {
		return
	}
	var input service.CatBreedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	breed, err := h.breeds.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, breed)
}

// Delete handles DELETE /api/v1/admin/cat-breeds/:id
// @Summary Delete breed
// @Tags vocabulary
// @Param id path string true "Breed ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Security BearerAuth
// @Router /admin/cat-breeds/{id} [delete]
func (h *CatBreedHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "breed")
	if !ok {
		return
	}
	if err := h.breeds.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "breed deleted"})
}

// CatStatusHandler handles the cat cafe status vocabulary.
type CatStatusHandler struct {
	statuses service.CatStatusService
}

// NewCatStatusHandler creates a new CatStatusHandler.
func NewCatStatusHandler(statuses service.CatStatusService) *CatStatusHandler {
	return &CatStatusHandler{statuses: statuses}
}

// List handles GET /api/v1/admin/cat-statuses
// @Summary List statuses
// @Tags vocabulary
// @Produce json
// @Success 200 {object} Response{data=[]domain.CatStatus}
// @Security BearerAuth
// @Router /admin/cat-statuses [get]
func (h *CatStatusHandler) List(c *gin.Context) {
	statuses, err := h.statuses.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, statuses)
}

// Create handles POST /api/v1/admin/cat-statuses
// @Summary Create status
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body service.CatStatusInput true "Status"
// @Success 201 {object} Response{data=domain.CatStatus}
// @Failure 409 {object} ErrorResponseBody "Duplicate value"
// @Security BearerAuth
// @Router /admin/cat-statuses [post]
func (h *CatStatusHandler) Create(c *gin.Context) {
	var input service.CatStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	status, err := h.statuses.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, status)
}

// Update handles PUT /api/v1/admin/cat-statuses/:id
// @Summary Update status
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param id path string true "Status ID (UUID)"
// @Param request body service.CatStatusInput true "Status"
// @Success 200 {object} Response{data=domain.CatStatus}
// @Security BearerAuth
// @Router /admin/cat-statuses/{id} [put]
func (h *CatStatusHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "status")
	if !ok {
		return
	}
	var input service.CatStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	status, err := h.statuses.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}

// Delete handles DELETE /api/v1/admin/cat-statuses/:id
// @Summary Delete status
// @Tags vocabulary
// @Param id path string true "Status ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Security BearerAuth
// @Router /admin/cat-statuses/{id} [delete]
func (h *CatStatusHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "status")
	if !ok {
		return
	}
	if err := h.statuses.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "status deleted"})
}
