package usecase_blog

import (
	"context"
	"fmt"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/domain_util"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"go.uber.org/zap"
)

const (
	defaultPageSize     = 10
	defaultLatestLimit  = 5
	defaultRelatedLimit = 3
	// related candidates are over-fetched so scoring has something to rank
	relatedPoolFactor = 3
)

type blogUsecase struct {
	postRepo  blog_interface.BlogPostRepository
	mangaRepo blog_interface.MangaRepository
	logger    *zap.Logger
	timeout   time.Duration
}

func NewBlogUsecase(
	postRepo blog_interface.BlogPostRepository,
	mangaRepo blog_interface.MangaRepository,
	logger *zap.Logger,
	timeout time.Duration,
) blog_interface.BlogUsecase {
	return &blogUsecase{
		postRepo:  postRepo,
		mangaRepo: mangaRepo,
		logger:    logger,
		timeout:   timeout,
	}
}

func (uc *blogUsecase) ListBlogPosts(ctx context.Context, query blog_models.PostQuery) blog_models.PostPage {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	query.OrderBy = blog_models.NormalizeOrder(query.OrderBy)
	query.Projection = blog_models.MangaSummary

	empty := blog_models.PostPage{Posts: []blog_models.BlogPost{}}

	posts, err := uc.postRepo.Find(ctx, query)
	if err != nil {
		uc.logger.Error("failed to fetch blog posts", zap.Error(err))
		return empty
	}
	count, err := uc.postRepo.Count(ctx, query)
	if err != nil {
		uc.logger.Error("failed to count blog posts", zap.Error(err))
		return empty
	}
	return blog_models.PostPage{Posts: posts, Count: count}
}

// GetBlogPostBySlug also bumps the view counter. A failed bump is logged
// and does not fail the read.
func (uc *blogUsecase) GetBlogPostBySlug(ctx context.Context, slug string) (*blog_models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	post, err := uc.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog post %q: %w", slug, err)
	}
	if post == nil {
		return nil, blog_models.ErrPostNotFound
	}

	if err := uc.postRepo.IncrementViews(ctx, post.ID); err != nil {
		uc.logger.Warn("failed to increment view count", zap.String("post_id", post.ID.Hex()), zap.Error(err))
	}
	return post, nil
}

func (uc *blogUsecase) GetLatestBlogPosts(ctx context.Context, limit int) []blog_models.BlogPost {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	return uc.ListBlogPosts(ctx, blog_models.PostQuery{Limit: int64(limit)}).Posts
}

// GetRelatedBlogPosts ranks recent posts about other manga by how many
// genres they share with mangaID.
func (uc *blogUsecase) GetRelatedBlogPosts(ctx context.Context, mangaID string, limit int) []blog_models.RelatedPost {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	related := []blog_models.RelatedPost{}

	id, err := usecase.ParseObjectID(mangaID)
	if err != nil {
		uc.logger.Warn("related posts requested for invalid manga id", zap.String("manga_id", mangaID))
		return related
	}

	manga, err := uc.mangaRepo.GetByID(ctx, id)
	if err != nil || manga == nil {
		uc.logger.Warn("reference manga unavailable", zap.String("manga_id", mangaID), zap.Error(err))
		return related
	}
	if len(manga.GenreIDs()) == 0 {
		return related
	}

	pool, err := uc.postRepo.Find(ctx, blog_models.PostQuery{
		Limit:          int64(limit * relatedPoolFactor),
		ExcludeMangaID: id,
		RequireManga:   true,
		Projection:     blog_models.MangaSummary,
	})
	if err != nil {
		uc.logger.Error("failed to fetch related blog posts", zap.Error(err))
		return related
	}

	for _, c := range domain_util.RelatedItems(manga, pool, limit) {
		related = append(related, blog_models.RelatedPost{BlogPost: c.Item, Score: c.Score})
	}
	return related
}
