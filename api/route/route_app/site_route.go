package route_app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller/controller_app"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository/repository_app/repository_app_config"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_app/usecase_app_config"
	"go.uber.org/zap"
)

func NewSiteSettingsRouter(
	settings domain_app_config.SiteSettingsUsecase,
	publicGroup *gin.RouterGroup,
	adminGroup *gin.RouterGroup,
) {
	ctrl := controller_app.NewSiteSettingsController(settings)

	publicGroup.GET("/site/settings", ctrl.GetSettingsHandler)
	adminGroup.PUT("/site/settings", ctrl.UpdateSettingsHandler)
}

func NewSocialLinkRouter(
	timeout time.Duration,
	db mongo.Database,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	repo := repository_app_config.NewSocialLinkRepository(db, domain.CollectionSocialMediaLinks)
	usecase := usecase_app_config.NewSocialLinkUsecase(repo, logger, timeout)
	ctrl := controller_app.NewSocialLinkController(usecase)

	group.GET("/social/links", ctrl.GetSocialLinksHandler)
}
