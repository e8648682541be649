package usecase_blog

import (
	"context"
	"strings"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/domain_util"
	"go.uber.org/zap"
)

const (
	defaultDiscoveryPageSize = 20
	defaultSearchLimit       = 20
	defaultPopularTagLimit   = 10
	relatedTermLimit         = 5
)

type discoveryUsecase struct {
	postRepo blog_interface.BlogPostRepository
	logger   *zap.Logger
	timeout  time.Duration
}

func NewDiscoveryUsecase(
	postRepo blog_interface.BlogPostRepository,
	logger *zap.Logger,
	timeout time.Duration,
) blog_interface.DiscoveryUsecase {
	return &discoveryUsecase{
		postRepo: postRepo,
		logger:   logger,
		timeout:  timeout,
	}
}

func (uc *discoveryUsecase) ListPosts(ctx context.Context, query blog_models.PostQuery) []blog_models.BlogPost {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if query.Limit <= 0 {
		query.Limit = defaultDiscoveryPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	query.OrderBy = blog_models.NormalizeOrder(query.OrderBy)
	query.Search = ""
	query.Projection = blog_models.MangaCard

	posts, err := uc.postRepo.Find(ctx, query)
	if err != nil {
		uc.logger.Error("failed to fetch blog posts", zap.String("tag", query.Tag), zap.Error(err))
		return []blog_models.BlogPost{}
	}
	return posts
}

// SearchBlogPosts filters by free text and by the first tag only. Related
// terms are only computed for a non-blank query.
func (uc *discoveryUsecase) SearchBlogPosts(ctx context.Context, query string, tags []string, limit int) blog_models.SearchResult {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	result := blog_models.SearchResult{
		Posts:        []blog_models.BlogPost{},
		RelatedTags:  []blog_models.TagCount{},
		RelatedTerms: []string{},
	}

	q := blog_models.PostQuery{
		Limit:      int64(limit),
		Search:     query,
		Projection: blog_models.MangaSummary,
	}
	if len(tags) > 0 {
		q.Tag = tags[0]
	}

	posts, err := uc.postRepo.Find(ctx, q)
	if err != nil {
		uc.logger.Error("failed to search blog posts", zap.String("query", query), zap.Error(err))
		return result
	}

	result.Posts = posts
	result.RelatedTags = domain_util.AggregateTags(posts, domain_util.TagOptions{})
	result.RelatedTerms = relatedTerms(posts, query)
	return result
}

func relatedTerms(posts []blog_models.BlogPost, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(posts) == 0 {
		return []string{}
	}

	terms := make([]domain_util.KeywordText, 0, len(posts))
	for _, post := range posts {
		fields := []string{post.SEOKeywords}
		fields = append(fields, post.Manga.GenreNames()...)
		terms = append(terms, domain_util.KeywordText(strings.Join(fields, ",")))
	}

	counts := domain_util.AggregateTags(terms, domain_util.TagOptions{
		ExcludeTerm: query,
		Limit:       relatedTermLimit,
	})
	names := make([]string, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Name)
	}
	return names
}

func (uc *discoveryUsecase) GetPopularTags(ctx context.Context, limit int) []blog_models.TagCount {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultPopularTagLimit
	}

	fields, err := uc.postRepo.ListKeywordFields(ctx)
	if err != nil {
		uc.logger.Error("failed to fetch blog keywords", zap.Error(err))
		return []blog_models.TagCount{}
	}

	items := make([]domain_util.KeywordText, 0, len(fields))
	for _, f := range fields {
		items = append(items, domain_util.KeywordText(f))
	}
	return domain_util.AggregateTags(items, domain_util.TagOptions{Limit: limit})
}
