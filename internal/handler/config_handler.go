package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cattery/internal/service"
)

// ConfigHandler handles key/value configuration endpoints.
type ConfigHandler struct {
	configService service.ConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// List handles GET /api/v1/admin/configs
// @Summary List config entries
// @Tags configs
// @Produce json
// @Param key query string false "Substring of the key"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ConfigEntry,meta=PagMeta}
// @Security BearerAuth
// @Router /admin/configs [get]
func (h *ConfigHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	entries, total, err := h.configService.List(c.Request.Context(), c.Query("key"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/admin/configs/:key
// @Summary Get config entry
// @Tags configs
// @Produce json
// @Param key path string true "Config key"
// @Success 200 {object} Response{data=domain.ConfigEntry}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/configs/{key} [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	entry, err := h.configService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}

// Set handles PUT /api/v1/admin/configs/:key
// @Summary Create or replace config entry
// @Description Values of known keys are validated against their JSON Schema.
// @Tags configs
// @Accept json
// @Produce json
// @Param key path string true "Config key"
// @Param request body service.SetConfigInput true "Value"
// @Success 200 {object} Response{data=domain.ConfigEntry}
// @Failure 400 {object} ErrorResponseBody "Invalid value"
// @Security BearerAuth
// @Router /admin/configs/{key} [put]
func (h *ConfigHandler) Set(c *gin.Context) {
	var input service.SetConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entry, err := h.configService.Set(c.Request.Context(), c.Param("key"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entry)
}
