package route_admin

import (
	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller/controller_admin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
)

func NewLoginRouter(lu domain_admin.LoginUsecase, group *gin.RouterGroup) {
	lc := controller_admin.NewLoginController(lu)
	group.POST("/admin/login", lc.Login)
}
