package route_blog

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller/controller_blog"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository/repository_blog"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_blog"
	"go.uber.org/zap"
)

func NewBlogRouter(
	timeout time.Duration,
	db mongo.Database,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	repoPost := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
	repoManga := repository_blog.NewMangaRepository(db, domain.CollectionMangaEntries)
	usecase := usecase_blog.NewBlogUsecase(repoPost, repoManga, logger, timeout)
	ctrl := controller_blog.NewBlogController(usecase)

	blogGroup := group.Group("/blog")
	{
		blogGroup.GET("/posts", ctrl.ListBlogPostsHandler)
		blogGroup.GET("/posts/latest", ctrl.GetLatestBlogPostsHandler)
		blogGroup.GET("/posts/:slug", ctrl.GetBlogPostBySlugHandler)
		blogGroup.GET("/related/:mangaId", ctrl.GetRelatedBlogPostsHandler)
	}
}

func NewDiscoveryRouter(
	timeout time.Duration,
	db mongo.Database,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	repoPost := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
	usecase := usecase_blog.NewDiscoveryUsecase(repoPost, logger, timeout)
	ctrl := controller_blog.NewDiscoveryController(usecase)

	discoveryGroup := group.Group("/discovery")
	{
		discoveryGroup.GET("/posts", ctrl.ListPostsHandler)
		discoveryGroup.GET("/search", ctrl.SearchHandler)
		discoveryGroup.GET("/tags", ctrl.GetPopularTagsHandler)
	}
}
