package blog_interface

import (
	"context"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *blog_models.BlogPost) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error

	// GetBySlug joins the full manga. (nil, nil) when no post has the slug.
	GetBySlug(ctx context.Context, slug string) (*blog_models.BlogPost, error)
	// GetByMangaID returns (nil, nil) when the manga has no post yet.
	GetByMangaID(ctx context.Context, mangaID primitive.ObjectID) (*blog_models.BlogPost, error)

	Find(ctx context.Context, query blog_models.PostQuery) ([]blog_models.BlogPost, error)
	Count(ctx context.Context, query blog_models.PostQuery) (int64, error)

	// ListKeywordFields returns every stored seo_keywords value that is a
	// string. Other BSON types are skipped.
	ListKeywordFields(ctx context.Context) ([]string, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}
