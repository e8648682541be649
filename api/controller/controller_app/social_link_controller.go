package controller_app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
)

type SocialLinkController struct {
	SocialLinkUsecase domain_app_config.SocialLinkUsecase
}

func NewSocialLinkController(uc domain_app_config.SocialLinkUsecase) *SocialLinkController {
	return &SocialLinkController{SocialLinkUsecase: uc}
}

func (c *SocialLinkController) GetSocialLinksHandler(ctx *gin.Context) {
	params := struct {
		IncludeInactive bool `form:"include_inactive"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "include_inactive must be a boolean")
		return
	}

	links := c.SocialLinkUsecase.GetSocialMediaLinks(ctx.Request.Context(), params.IncludeInactive)
	controller.SuccessResponse(ctx, "links", links, len(links))
}
