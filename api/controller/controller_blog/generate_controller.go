package controller_blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/usecase"
)

type GenerateController struct {
	GenerateUsecase blog_interface.GenerateUsecase
}

func NewGenerateController(uc blog_interface.GenerateUsecase) *GenerateController {
	return &GenerateController{GenerateUsecase: uc}
}

type GenerateRequest struct {
	MangaID string `json:"mangaId" binding:"required"`
	Force   bool   `json:"force"`
}

func (c *GenerateController) GenerateHandler(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMETER", "Manga ID is required")
		return
	}

	post, err := c.GenerateUsecase.Generate(ctx.Request.Context(), req.MangaID, req.Force)
	switch {
	case err == nil:
	case errors.Is(err, blog_models.ErrPostExists):
		body := gin.H{
			"code":    "POST_EXISTS",
			"message": "Blog post already exists for this manga",
		}
		if post != nil {
			body["blogPostId"] = post.ID.Hex()
		}
		ctx.AbortWithStatusJSON(http.StatusConflict, body)
		return
	case errors.Is(err, usecase.ErrInvalidID):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	case errors.Is(err, blog_models.ErrMangaNotFound):
		controller.ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	case errors.Is(err, blog_models.ErrLLMUnavailable):
		controller.ErrorResponse(ctx, http.StatusServiceUnavailable, "LLM_UNAVAILABLE", err.Error())
		return
	default:
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "GENERATION_FAILED", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Blog post generated successfully",
		"blogPostId":   post.ID.Hex(),
		"blogPostSlug": post.Slug,
	})
}

func (c *GenerateController) StatusHandler(ctx *gin.Context) {
	mangaID := ctx.Query("mangaId")
	if mangaID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMETER", "Manga ID is required")
		return
	}

	status, err := c.GenerateUsecase.Status(ctx.Request.Context(), mangaID)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, status)
	case errors.Is(err, blog_models.ErrPostNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"exists":  false,
			"message": "No blog post found for this manga",
		})
	case errors.Is(err, usecase.ErrInvalidID):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
	default:
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
