package usecase_blog

import (
	"context"
	"fmt"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/internal/feed"
	"go.uber.org/zap"
)

type feedUsecase struct {
	postRepo blog_interface.BlogPostRepository
	settings domain_app_config.SiteSettingsUsecase
	siteURL  string
	logger   *zap.Logger
	timeout  time.Duration
	now      func() time.Time
}

func NewFeedUsecase(
	postRepo blog_interface.BlogPostRepository,
	settings domain_app_config.SiteSettingsUsecase,
	siteURL string,
	logger *zap.Logger,
	timeout time.Duration,
) blog_interface.FeedUsecase {
	return &feedUsecase{
		postRepo: postRepo,
		settings: settings,
		siteURL:  siteURL,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
	}
}

// posts degrades to an empty feed when the store is unavailable.
func (uc *feedUsecase) posts(ctx context.Context, limit int64, projection blog_models.MangaProjection) []blog_models.BlogPost {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	posts, err := uc.postRepo.Find(ctx, blog_models.PostQuery{
		Limit:      limit,
		OrderBy:    blog_models.DefaultPostOrder,
		Projection: projection,
	})
	if err != nil {
		uc.logger.Error("failed to fetch blog posts for feed", zap.Error(err))
		return []blog_models.BlogPost{}
	}
	return posts
}

func (uc *feedUsecase) RSS(ctx context.Context) ([]byte, error) {
	posts := uc.posts(ctx, feed.RSSItemLimit, blog_models.MangaFull)

	out, err := feed.BuildRSS(feed.Channel{
		Title:       uc.settings.SiteTitle(ctx),
		Description: uc.settings.SiteDescription(ctx),
		SiteURL:     uc.siteURL,
		BuildDate:   uc.now(),
	}, posts)
	if err != nil {
		return nil, fmt.Errorf("failed to build rss feed: %w", err)
	}
	return out, nil
}

func (uc *feedUsecase) Sitemap(ctx context.Context) ([]byte, error) {
	posts := uc.posts(ctx, feed.SitemapPostLimit, blog_models.MangaCard)

	out, err := feed.BuildSitemap(uc.siteURL, posts)
	if err != nil {
		return nil, fmt.Errorf("failed to build sitemap: %w", err)
	}
	return out, nil
}
