package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cattery/internal/service"
)

// AIHandler exposes the stateless AI form fill.
type AIHandler struct {
	formFill service.FormFillService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(formFill service.FormFillService) *AIHandler {
	return &AIHandler{formFill: formFill}
}

// Fill handles POST /api/v1/ai/form/fill
// @Summary Extract form fields from free text
// @Description Runs one extraction and returns normalized values. Fields the text does
// @Description not mention are null. Nothing is stored.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body service.FillInput true "Fill request"
// @Success 200 {object} Response{data=aifill.Output}
// @Failure 400 {object} ErrorResponseBody "Empty text or unsupported form type"
// @Failure 502 {object} ErrorResponseBody "Provider error or malformed output"
// @Failure 503 {object} ErrorResponseBody "Provider not configured"
// @Failure 504 {object} ErrorResponseBody "Provider timed out"
// @Security BearerAuth
// @Router /ai/form/fill [post]
func (h *AIHandler) Fill(c *gin.Context) {
	var input service.FillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.formFill.Fill(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Providers handles GET /api/v1/ai/providers
// @Summary List AI providers
// @Tags ai
// @Produce json
// @Success 200 {object} Response{data=[]service.ProviderInfo}
// @Security BearerAuth
// @Router /ai/providers [get]
func (h *AIHandler) Providers(c *gin.Context) {
	RespondOK(c, h.formFill.Providers())
}
