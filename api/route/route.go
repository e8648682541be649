package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/middleware"
	"github.com/manhva-oppa/oppa-blog/api/route/route_admin"
	"github.com/manhva-oppa/oppa-blog/api/route/route_app"
	"github.com/manhva-oppa/oppa-blog/api/route/route_blog"
	"github.com/manhva-oppa/oppa-blog/bootstrap"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository/repository_admin"
	"github.com/manhva-oppa/oppa-blog/repository/repository_app/repository_app_config"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_admin"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_app/usecase_app_config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	writer blog_interface.CompletionClient,
	logger *zap.Logger,
	engine *gin.Engine,
) {
	engine.Use(middleware.Recovery(logger), middleware.ZapLogger(logger), middleware.Metrics())

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// shared so every consumer reads through one cache
	settingsRepo := repository_app_config.NewSiteSettingsRepository(db, domain.CollectionSiteSettings)
	settingsCache := usecase_app_config.NewSettingsCache(
		time.Duration(env.SettingsCacheTTL)*time.Second,
		domain_app_config.DefaultSiteSettings(),
	)
	settings := usecase_app_config.NewSiteSettingsUsecase(settingsRepo, settingsCache, logger, timeout)

	adminRepo := repository_admin.NewAdminRepository(db, domain.CollectionAdmins)
	login := usecase_admin.NewLoginUsecase(adminRepo, env.AccessTokenSecret, env.AccessTokenExpiryHour, timeout)
	adminOnly := []gin.HandlerFunc{
		middleware.JwtAuthMiddleware(env.AccessTokenSecret),
		middleware.AdminOnly(login, logger),
	}

	rootRouter := engine.Group("")
	route_blog.NewFeedRouter(env.SiteURL, settings, timeout, db, logger, rootRouter)

	publicRouter := engine.Group("/api")
	route_blog.NewBlogRouter(timeout, db, logger, publicRouter)
	route_blog.NewDiscoveryRouter(timeout, db, logger, publicRouter)
	route_app.NewSocialLinkRouter(timeout, db, logger, publicRouter)
	route_admin.NewLoginRouter(login, publicRouter)

	generateLimiter := middleware.NewRateLimiter(env.GenerateRatePerMinute, time.Minute)
	route_blog.NewGenerateRouter(timeout, db, writer, logger, publicRouter,
		append(adminOnly, middleware.RateLimit(generateLimiter))...)

	adminRouter := engine.Group("/api/admin", adminOnly...)
	route_blog.NewMangaRouter(timeout, db, adminRouter)
	route_app.NewSiteSettingsRouter(settings, publicRouter, adminRouter)
}
