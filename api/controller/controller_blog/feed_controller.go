package controller_blog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
)

const feedCacheControl = "public, max-age=3600"

type FeedController struct {
	FeedUsecase blog_interface.FeedUsecase
}

func NewFeedController(uc blog_interface.FeedUsecase) *FeedController {
	return &FeedController{FeedUsecase: uc}
}

func (c *FeedController) RSSHandler(ctx *gin.Context) {
	out, err := c.FeedUsecase.RSS(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	ctx.Header("Cache-Control", feedCacheControl)
	ctx.Data(http.StatusOK, "application/rss+xml; charset=utf-8", out)
}

func (c *FeedController) SitemapHandler(ctx *gin.Context) {
	out, err := c.FeedUsecase.Sitemap(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	ctx.Header("Cache-Control", feedCacheControl)
	ctx.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}
