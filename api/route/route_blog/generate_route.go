package route_blog

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller/controller_blog"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository/repository_blog"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_blog"
	"go.uber.org/zap"
)

// NewGenerateRouter exposes the status probe publicly and guards generation
// with auth, which callers pass in as middleware.
func NewGenerateRouter(
	timeout time.Duration,
	db mongo.Database,
	writer blog_interface.CompletionClient,
	logger *zap.Logger,
	group *gin.RouterGroup,
	guard ...gin.HandlerFunc,
) {
	repoPost := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
	repoManga := repository_blog.NewMangaRepository(db, domain.CollectionMangaEntries)
	usecase := usecase_blog.NewGenerateUsecase(repoPost, repoManga, writer, logger, timeout)
	ctrl := controller_blog.NewGenerateController(usecase)

	generateGroup := group.Group("/blog/generate")
	{
		generateGroup.GET("", ctrl.StatusHandler)
		generateGroup.POST("", append(guard, ctrl.GenerateHandler)...)
	}
}

func NewMangaRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	repoManga := repository_blog.NewMangaRepository(db, domain.CollectionMangaEntries)
	usecase := usecase_blog.NewMangaUsecase(repoManga, timeout)
	ctrl := controller_blog.NewMangaController(usecase)

	mangaGroup := group.Group("/manga")
	{
		mangaGroup.GET("", ctrl.ListHandler)
		mangaGroup.POST("", ctrl.CreateHandler)
		mangaGroup.DELETE("", ctrl.DeleteManyHandler)
		mangaGroup.GET("/:id", ctrl.GetHandler)
		mangaGroup.PUT("/:id", ctrl.UpdateHandler)
		mangaGroup.PATCH("/:id", ctrl.PatchHandler)
		mangaGroup.DELETE("/:id", ctrl.DeleteHandler)
	}
}
