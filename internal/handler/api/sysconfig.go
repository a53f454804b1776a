package api

import (
	"net/http"

	resdto "ev-rental-pricing/internal/handler/dto/response"
	"ev-rental-pricing/internal/handler/httperr"
	"ev-rental-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SystemConfigHandler struct {
	sysConfigUseCase usecase.SystemConfigUseCase
}

func NewSystemConfigHandler(sysConfigUseCase usecase.SystemConfigUseCase) *SystemConfigHandler {
	return &SystemConfigHandler{
		sysConfigUseCase: sysConfigUseCase,
	}
}

// @Summary Get system config
// @Description Current deposit-percent snapshot used by the quote engine
// @Tags system-config
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SystemConfigResponse
// @Router /system-config [get]
func (h *SystemConfigHandler) GetSystemConfig(c *gin.Context) {
	rm, err := h.sysConfigUseCase.Snapshot(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSystemConfigRM(rm))
}

// @Summary Refresh system config
// @Description Reload the deposit-percent snapshot from storage
// @Tags system-config
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SystemConfigResponse
// @Router /system-config/refresh [post]
func (h *SystemConfigHandler) RefreshSystemConfig(c *gin.Context) {
	rm, err := h.sysConfigUseCase.Refresh(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSystemConfigRM(rm))
}
