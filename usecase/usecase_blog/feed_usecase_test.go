package usecase_blog

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_app/usecase_app_config"
	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestFeedRSSUsesSiteSettings(t *testing.T) {
	postRepo := mocks.NewBlogPostRepository(t)
	settings := mocks.NewSiteSettingsUsecase(t)

	settings.On("SiteTitle", mock.Anything).Return("Oppa Reviews").Once()
	settings.On("SiteDescription", mock.Anything).Return("Weekly manhwa reviews").Once()

	published := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	postRepo.On("Find", mock.Anything, blog_models.PostQuery{
		Limit:      100,
		OrderBy:    "published_date",
		Projection: blog_models.MangaFull,
	}).Return([]blog_models.BlogPost{{
		ID:            primitive.NewObjectID(),
		Title:         "Omniscient Reader",
		Slug:          "omniscient-reader",
		PublishedDate: published,
	}}, nil).Once()

	uc := NewFeedUsecase(postRepo, settings, "https://blog.example.com", zap.NewNop(), testTimeout)
	out, err := uc.RSS(context.Background())
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "Oppa Reviews", parsed.Title)
	assert.Equal(t, "Weekly manhwa reviews", parsed.Description)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, "https://blog.example.com/blog/omniscient-reader/", parsed.Items[0].Link)
}

func TestFeedRSSBlankStoredTitleUsesDefault(t *testing.T) {
	settingsRepo := mocks.NewSiteSettingsRepository(t)
	settingsRepo.On("Get", mock.Anything).Return(&domain_app_config.SiteSettingsDocument{
		ID: domain_app_config.SiteSettingsID,
		Settings: domain_app_config.SiteSettingsPatch{
			SiteTitle:       new(string),
			SiteDescription: new(string),
		},
	}, nil).Once()
	settings := usecase_app_config.NewSiteSettingsUsecase(
		settingsRepo,
		usecase_app_config.NewSettingsCache(time.Hour, domain_app_config.DefaultSiteSettings()),
		zap.NewNop(),
		testTimeout,
	)

	postRepo := mocks.NewBlogPostRepository(t)
	postRepo.On("Find", mock.Anything, mock.Anything).Return([]blog_models.BlogPost{}, nil).Once()

	uc := NewFeedUsecase(postRepo, settings, "https://blog.example.com", zap.NewNop(), testTimeout)
	out, err := uc.RSS(context.Background())
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(out))
	require.NoError(t, err)
	defaults := domain_app_config.DefaultSiteSettings()
	assert.Equal(t, defaults.SiteTitle, parsed.Title)
	assert.Equal(t, defaults.SiteDescription, parsed.Description)
	assert.Contains(t, parsed.Copyright, defaults.SiteTitle)
}

func TestFeedSitemapDegradesOnStoreError(t *testing.T) {
	postRepo := mocks.NewBlogPostRepository(t)
	postRepo.On("Find", mock.Anything, mock.MatchedBy(func(q blog_models.PostQuery) bool {
		return q.Limit == 1000 && q.Projection == blog_models.MangaCard
	})).Return(nil, errors.New("no reachable servers")).Once()

	uc := NewFeedUsecase(postRepo, mocks.NewSiteSettingsUsecase(t), "https://blog.example.com", zap.NewNop(), testTimeout)
	out, err := uc.Sitemap(context.Background())
	require.NoError(t, err)

	assert.Contains(t, string(out), "<loc>https://blog.example.com/</loc>")
	assert.Contains(t, string(out), "<loc>https://blog.example.com/about</loc>")
	assert.NotContains(t, string(out), "/blog/omniscient")
}
