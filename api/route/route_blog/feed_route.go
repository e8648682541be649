package route_blog

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller/controller_blog"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository/repository_blog"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_blog"
	"go.uber.org/zap"
)

func NewFeedRouter(
	siteURL string,
	settings domain_app_config.SiteSettingsUsecase,
	timeout time.Duration,
	db mongo.Database,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	repoPost := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
	usecase := usecase_blog.NewFeedUsecase(repoPost, settings, siteURL, logger, timeout)
	ctrl := controller_blog.NewFeedController(usecase)

	group.GET("/rss.xml", ctrl.RSSHandler)
	group.GET("/sitemap.xml", ctrl.SitemapHandler)
}
