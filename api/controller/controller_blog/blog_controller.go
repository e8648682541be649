package controller_blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
)

type BlogController struct {
	BlogUsecase blog_interface.BlogUsecase
}

func NewBlogController(uc blog_interface.BlogUsecase) *BlogController {
	return &BlogController{BlogUsecase: uc}
}

func (c *BlogController) ListBlogPostsHandler(ctx *gin.Context) {
	params := struct {
		Limit     int64  `form:"limit" binding:"omitempty,min=1,max=100"`
		Offset    int64  `form:"offset" binding:"omitempty,min=0"`
		OrderBy   string `form:"order_by"`
		Ascending bool   `form:"ascending"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	page := c.BlogUsecase.ListBlogPosts(ctx.Request.Context(), blog_models.PostQuery{
		Limit:     params.Limit,
		Offset:    params.Offset,
		OrderBy:   params.OrderBy,
		Ascending: params.Ascending,
	})
	controller.SuccessResponse(ctx, "posts", page.Posts, int(page.Count))
}

func (c *BlogController) GetLatestBlogPostsHandler(ctx *gin.Context) {
	params := struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	posts := c.BlogUsecase.GetLatestBlogPosts(ctx.Request.Context(), params.Limit)
	controller.SuccessResponse(ctx, "posts", posts, len(posts))
}

func (c *BlogController) GetBlogPostBySlugHandler(ctx *gin.Context) {
	slug := ctx.Param("slug")

	post, err := c.BlogUsecase.GetBlogPostBySlug(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, blog_models.ErrPostNotFound) {
			controller.ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "blog post not found")
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "post", post, 1)
}

func (c *BlogController) GetRelatedBlogPostsHandler(ctx *gin.Context) {
	params := struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=20"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	related := c.BlogUsecase.GetRelatedBlogPosts(ctx.Request.Context(), ctx.Param("mangaId"), params.Limit)
	controller.SuccessResponse(ctx, "posts", related, len(related))
}
