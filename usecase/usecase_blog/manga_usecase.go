package usecase_blog

import (
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/usecase"
)

type mangaUsecase struct {
	usecase.BaseUsecase[blog_models.Manga]
}

func NewMangaUsecase(repo blog_interface.MangaRepository, timeout time.Duration) blog_interface.MangaUsecase {
	return &mangaUsecase{
		BaseUsecase: usecase.NewBaseUsecase[blog_models.Manga](repo, timeout),
	}
}
