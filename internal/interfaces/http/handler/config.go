package handler

import (
	"github.com/gin-gonic/gin"

	apptracking "github.com/coldchain/backend/internal/application/tracking"
)

// ConfigHandler handles temperature range configuration endpoints
type ConfigHandler struct {
	BaseHandler
	configService *apptracking.ConfigService
}

// NewConfigHandler creates a new ConfigHandler
func NewConfigHandler(configService *apptracking.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// GetRange godoc
// @ID           getTemperatureRange
// @Summary      Get the temperature range
// @Description  Read the configured temperature range; an unset bound is null
// @Tags         config
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /config/temperature-range [get]
func (h *ConfigHandler) GetRange(c *gin.Context) {
	rng, err := h.configService.GetRange(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rng)
}

// SetRange godoc
// @ID           setTemperatureRange
// @Summary      Set the temperature range
// @Description  Replace both temperature bounds; both are required
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request body tracking.SetTemperatureRangeRequest true "Temperature range"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /config/temperature-range [put]
func (h *ConfigHandler) SetRange(c *gin.Context) {
	var req apptracking.SetTemperatureRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "min_temperature and max_temperature required")
		return
	}

	if err := h.configService.SetRange(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Temperature range updated")
}
