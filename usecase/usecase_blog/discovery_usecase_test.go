package usecase_blog

import (
	"context"
	"errors"
	"testing"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListPostsByTag(t *testing.T) {
	postRepo := mocks.NewBlogPostRepository(t)
	postRepo.On("Find", mock.Anything, blog_models.PostQuery{
		Limit:      20,
		Offset:     40,
		OrderBy:    "views",
		Tag:        "Isekai",
		Projection: blog_models.MangaCard,
	}).Return([]blog_models.BlogPost{{Title: "Isekai One"}}, nil).Once()

	uc := NewDiscoveryUsecase(postRepo, zap.NewNop(), testTimeout)
	got := uc.ListPosts(context.Background(), blog_models.PostQuery{
		Offset:  40,
		OrderBy: "views",
		Tag:     "Isekai",
		Search:  "ignored",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Isekai One", got[0].Title)
}

func TestSearchBlogPosts(t *testing.T) {
	posts := []blog_models.BlogPost{
		{
			Title:       "Solo Leveling",
			SEOKeywords: "Solo Leveling, manga, manhwa, Action",
			Manga: &blog_models.Manga{Genres: []blog_models.Genre{
				{Name: "Action"}, {Name: "Fantasy"},
			}},
		},
		{
			Title:       "Omniscient Reader",
			SEOKeywords: "Omniscient Reader, manga, manhwa, Action",
			Manga:       &blog_models.Manga{Genres: []blog_models.Genre{{Name: "Action"}}},
		},
	}

	t.Run("aggregates tags and terms", func(t *testing.T) {
		postRepo := mocks.NewBlogPostRepository(t)
		postRepo.On("Find", mock.Anything, blog_models.PostQuery{
			Limit:      20,
			Search:     "Manga",
			Tag:        "manhwa",
			Projection: blog_models.MangaSummary,
		}).Return(posts, nil).Once()

		uc := NewDiscoveryUsecase(postRepo, zap.NewNop(), testTimeout)
		got := uc.SearchBlogPosts(context.Background(), "Manga", []string{"manhwa", "second tag is ignored"}, 0)

		assert.Equal(t, posts, got.Posts)
		assert.Equal(t, []blog_models.TagCount{
			{Name: "manga", Count: 2},
			{Name: "manhwa", Count: 2},
			{Name: "Action", Count: 2},
			{Name: "Solo Leveling", Count: 1},
			{Name: "Omniscient Reader", Count: 1},
		}, got.RelatedTags)
		// genres count alongside keywords, the query itself is excluded
		assert.Equal(t, []string{"Action", "manhwa", "Solo Leveling", "Fantasy", "Omniscient Reader"}, got.RelatedTerms)
	})

	t.Run("blank query has no related terms", func(t *testing.T) {
		postRepo := mocks.NewBlogPostRepository(t)
		postRepo.On("Find", mock.Anything, mock.Anything).Return(posts, nil).Once()

		uc := NewDiscoveryUsecase(postRepo, zap.NewNop(), testTimeout)
		got := uc.SearchBlogPosts(context.Background(), "  ", nil, 5)

		assert.NotEmpty(t, got.RelatedTags)
		assert.NotNil(t, got.RelatedTerms)
		assert.Empty(t, got.RelatedTerms)
	})

	t.Run("store error", func(t *testing.T) {
		postRepo := mocks.NewBlogPostRepository(t)
		postRepo.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

		uc := NewDiscoveryUsecase(postRepo, zap.NewNop(), testTimeout)
		got := uc.SearchBlogPosts(context.Background(), "x", nil, 5)

		assert.Empty(t, got.Posts)
		assert.Empty(t, got.RelatedTags)
		assert.Empty(t, got.RelatedTerms)
	})
}

func TestGetPopularTags(t *testing.T) {
	postRepo := mocks.NewBlogPostRepository(t)
	postRepo.On("ListKeywordFields", mock.Anything).Return([]string{
		"Romance, Drama",
		"Romance, Comedy",
		"romance",
		"",
	}, nil).Once()

	uc := NewDiscoveryUsecase(postRepo, zap.NewNop(), testTimeout)
	got := uc.GetPopularTags(context.Background(), 2)

	assert.Equal(t, []blog_models.TagCount{
		{Name: "Romance", Count: 2},
		{Name: "Drama", Count: 1},
	}, got)
}

func TestGetPopularTagsStoreError(t *testing.T) {
	postRepo := mocks.NewBlogPostRepository(t)
	postRepo.On("ListKeywordFields", mock.Anything).Return(nil, errors.New("boom")).Once()

	uc := NewDiscoveryUsecase(postRepo, zap.NewNop(), testTimeout)
	got := uc.GetPopularTags(context.Background(), 0)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
