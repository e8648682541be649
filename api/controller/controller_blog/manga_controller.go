package controller_blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields a partial update may not touch.
var immutableMangaFields = []string{"_id", "id", "created_at", "updated_at"}

type MangaController struct {
	MangaUsecase blog_interface.MangaUsecase
}

func NewMangaController(uc blog_interface.MangaUsecase) *MangaController {
	return &MangaController{MangaUsecase: uc}
}

func mangaError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		controller.ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "manga not found")
	default:
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func (c *MangaController) CreateHandler(ctx *gin.Context) {
	var manga blog_models.Manga
	if err := ctx.ShouldBindJSON(&manga); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	created, err := c.MangaUsecase.Create(ctx.Request.Context(), &manga)
	if err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "manga", created, 1)
}

func (c *MangaController) GetHandler(ctx *gin.Context) {
	manga, err := c.MangaUsecase.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "manga", manga, 1)
}

func (c *MangaController) ListHandler(ctx *gin.Context) {
	params := struct {
		Page     int `form:"page,default=1" binding:"min=1"`
		PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
	}{}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	manga, total, err := c.MangaUsecase.GetPaginated(ctx.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "manga", manga, int(total))
}

// UpdateHandler replaces a stored manga. The stored created_at survives.
func (c *MangaController) UpdateHandler(ctx *gin.Context) {
	existing, err := c.MangaUsecase.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		mangaError(ctx, err)
		return
	}

	var manga blog_models.Manga
	if err := ctx.ShouldBindJSON(&manga); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	manga.ID = existing.ID
	manga.CreatedAt = existing.CreatedAt

	if err := c.MangaUsecase.Update(ctx.Request.Context(), &manga); err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "manga", manga, 1)
}

// PatchHandler sets the given fields on a stored manga.
func (c *MangaController) PatchHandler(ctx *gin.Context) {
	var updates map[string]interface{}
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	for _, field := range immutableMangaFields {
		delete(updates, field)
	}
	if len(updates) == 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "no updatable fields")
		return
	}
	if title, ok := updates["title"]; ok {
		if s, _ := title.(string); s == "" {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "title cannot be empty")
			return
		}
	}

	id := ctx.Param("id")
	exists, err := c.MangaUsecase.Exists(ctx.Request.Context(), id)
	if err != nil {
		mangaError(ctx, err)
		return
	}
	if !exists {
		mangaError(ctx, domain.ErrNotFound)
		return
	}

	if err := c.MangaUsecase.UpdateByID(ctx.Request.Context(), id, updates); err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "updated", id, 1)
}

func (c *MangaController) DeleteHandler(ctx *gin.Context) {
	if err := c.MangaUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "deleted", ctx.Param("id"), 1)
}

// DeleteManyHandler removes every manga in the body's id list.
func (c *MangaController) DeleteManyHandler(ctx *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required,min=1,max=100"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	for _, id := range req.IDs {
		if !primitive.IsValidObjectID(id) {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "invalid id format: "+id)
			return
		}
	}

	if err := c.MangaUsecase.DeleteByIDs(ctx.Request.Context(), req.IDs); err != nil {
		mangaError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "deleted", req.IDs, len(req.IDs))
}
