package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cattery/internal/aifill"
	"cattery/internal/service"
)

// DraftHandler handles open cat form sessions.
type DraftHandler struct {
	drafts service.DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(drafts service.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// Open handles POST /api/v1/admin/cat-drafts
// @Summary Open a cat form
// @Description With cat_id the form starts from that cat; otherwise it is blank.
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body service.OpenDraftInput false "Optional cat to edit"
// @Success 201 {object} Response{data=service.DraftView}
// @Failure 404 {object} ErrorResponseBody "Cat not found"
// @Security BearerAuth
// @Router /admin/cat-drafts [post]
func (h *DraftHandler) Open(c *gin.Context) {
	var input service.OpenDraftInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.drafts.Open(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, view)
}

// Get handles GET /api/v1/admin/cat-drafts/:id
// @Summary Get a cat form
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} Response{data=service.DraftView}
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Security BearerAuth
// @Router /admin/cat-drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}

	view, err := h.drafts.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Edit handles PATCH /api/v1/admin/cat-drafts/:id
// @Summary Edit a cat form
// @Description Edited fields are no longer marked as AI-filled. Rejected while an AI fill runs.
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param request body aifill.Edit true "Changed fields"
// @Success 200 {object} Response{data=service.DraftView}
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Failure 409 {object} ErrorResponseBody "AI fill running"
// @Security BearerAuth
// @Router /admin/cat-drafts/{id} [patch]
func (h *DraftHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}

	var edit aifill.Edit
	if err := c.ShouldBindJSON(&edit); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.drafts.Edit(c.Request.Context(), id, edit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Fill handles POST /api/v1/admin/cat-drafts/:id/ai-fill
// @Summary AI-fill a cat form
// @Description Extracts fields from text and merges every non-null one into the form.
// @Description Only one fill may run per form at a time.
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param request body service.DraftFillInput true "Text to extract from"
// @Success 200 {object} Response{data=service.DraftFillResult}
// @Failure 400 {object} ErrorResponseBody "Empty text"
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Failure 409 {object} ErrorResponseBody "Fill already running"
// @Failure 502 {object} ErrorResponseBody "Provider error or malformed output"
// @Failure 503 {object} ErrorResponseBody "Provider not configured"
// @Failure 504 {object} ErrorResponseBody "Provider timed out"
// @Security BearerAuth
// @Router /admin/cat-drafts/{id}/ai-fill [post]
func (h *DraftHandler) Fill(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}

	var input service.DraftFillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.drafts.Fill(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Reset handles POST /api/v1/admin/cat-drafts/:id/reset
// @Summary Reset a cat form
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} Response{data=service.DraftView}
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Failure 409 {object} ErrorResponseBody "AI fill running"
// @Security BearerAuth
// @Router /admin/cat-drafts/{id}/reset [post]
func (h *DraftHandler) Reset(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}

	view, err := h.drafts.Reset(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Commit handles POST /api/v1/admin/cat-drafts/:id/commit
// @Summary Save a cat form
// @Description Creates or updates the cat and closes the form.
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} Response{data=domain.Cat}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Security BearerAuth
// @Router /admin/cat-drafts/{id}/commit [post]
func (h *DraftHandler) Commit(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}

	cat, err := h.drafts.Commit(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cat)
}

// Close handles DELETE /api/v1/admin/cat-drafts/:id
// @Summary Close a cat form
// @Description Discards the form and cancels a running AI fill.
// @Tags drafts
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Security BearerAuth
// @Router /admin/cat-drafts/{id} [delete]
func (h *DraftHandler) Close(c *gin.Context) {
	id, ok := parseID(c, "draft")
	if !ok {
		return
	}

	if err := h.drafts.Close(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "draft closed"})
}
