package controller_app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
)

type SiteSettingsController struct {
	SiteSettingsUsecase domain_app_config.SiteSettingsUsecase
}

func NewSiteSettingsController(uc domain_app_config.SiteSettingsUsecase) *SiteSettingsController {
	return &SiteSettingsController{SiteSettingsUsecase: uc}
}

func (c *SiteSettingsController) GetSettingsHandler(ctx *gin.Context) {
	settings := c.SiteSettingsUsecase.GetSiteConfig(ctx.Request.Context())
	controller.SuccessResponse(ctx, "settings", settings, 1)
}

// UpdateSettingsHandler applies a partial update. Omitted fields keep their
// stored value.
func (c *SiteSettingsController) UpdateSettingsHandler(ctx *gin.Context) {
	var patch domain_app_config.SiteSettingsPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := c.SiteSettingsUsecase.UpdateSettings(ctx.Request.Context(), patch); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "settings", c.SiteSettingsUsecase.GetSiteConfig(ctx.Request.Context()), 1)
}
