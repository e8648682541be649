package controller_blog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
)

type DiscoveryController struct {
	DiscoveryUsecase blog_interface.DiscoveryUsecase
}

func NewDiscoveryController(uc blog_interface.DiscoveryUsecase) *DiscoveryController {
	return &DiscoveryController{DiscoveryUsecase: uc}
}

func (c *DiscoveryController) ListPostsHandler(ctx *gin.Context) {
	params := struct {
		Limit     int64  `form:"limit" binding:"omitempty,min=1,max=100"`
		Offset    int64  `form:"offset" binding:"omitempty,min=0"`
		OrderBy   string `form:"order_by"`
		Ascending bool   `form:"ascending"`
		Tag       string `form:"tag"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	posts := c.DiscoveryUsecase.ListPosts(ctx.Request.Context(), blog_models.PostQuery{
		Limit:     params.Limit,
		Offset:    params.Offset,
		OrderBy:   params.OrderBy,
		Ascending: params.Ascending,
		Tag:       strings.TrimSpace(params.Tag),
	})
	controller.SuccessResponse(ctx, "posts", posts, len(posts))
}

// SearchHandler takes tags as a comma separated list.
func (c *DiscoveryController) SearchHandler(ctx *gin.Context) {
	params := struct {
		Query string `form:"q"`
		Tags  string `form:"tags"`
		Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	var tags []string
	for _, tag := range strings.Split(params.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	result := c.DiscoveryUsecase.SearchBlogPosts(ctx.Request.Context(), params.Query, tags, params.Limit)
	controller.SuccessResponse(ctx, "search", result, len(result.Posts))
}

func (c *DiscoveryController) GetPopularTagsHandler(ctx *gin.Context) {
	params := struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	tags := c.DiscoveryUsecase.GetPopularTags(ctx.Request.Context(), params.Limit)
	controller.SuccessResponse(ctx, "tags", tags, len(tags))
}
