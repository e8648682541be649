package blog_interface

import (
	"context"

	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MangaRepository interface {
	domain.BaseRepository[blog_models.Manga]

	// WatchInserts blocks, calling handle with the id of every manga
	// inserted after the call, until ctx ends or the stream fails.
	WatchInserts(ctx context.Context, handle func(ctx context.Context, id primitive.ObjectID)) error
}

// MangaUsecase is the admin catalog CRUD surface.
type MangaUsecase interface {
	usecase.BaseUsecase[blog_models.Manga]
}
