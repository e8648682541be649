package controller_admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
)

type LoginController struct {
	LoginUsecase domain_admin.LoginUsecase
}

func NewLoginController(uc domain_admin.LoginUsecase) *LoginController {
	return &LoginController{LoginUsecase: uc}
}

func (lc *LoginController) Login(ctx *gin.Context) {
	var request domain_admin.LoginRequest
	if err := ctx.ShouldBind(&request); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	resp, err := lc.LoginUsecase.Login(ctx.Request.Context(), request)
	if err != nil {
		if errors.Is(err, blog_models.ErrInvalidCredentials) {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
