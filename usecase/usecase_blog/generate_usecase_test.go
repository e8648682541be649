package usecase_blog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type generateFixture struct {
	postRepo  *mocks.BlogPostRepository
	mangaRepo *mocks.MangaRepository
	writer    *mocks.CompletionClient
	uc        *generateUsecase
}

var fixedNow = time.Date(2025, 2, 14, 9, 30, 0, 123456789, time.UTC)

func newGenerateFixture(t *testing.T) generateFixture {
	f := generateFixture{
		postRepo:  mocks.NewBlogPostRepository(t),
		mangaRepo: mocks.NewMangaRepository(t),
		writer:    mocks.NewCompletionClient(t),
	}
	f.uc = NewGenerateUsecase(f.postRepo, f.mangaRepo, f.writer, zap.NewNop(), testTimeout).(*generateUsecase)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func sampleManga() *blog_models.Manga {
	return &blog_models.Manga{
		ID:          primitive.NewObjectID(),
		Title:       "Tower of God",
		Description: "A boy climbs a tower.",
		CoverImage:  "https://cdn.example.com/tog.jpg",
		Genres:      []blog_models.Genre{{ID: primitive.NewObjectID(), Name: "Fantasy"}, {ID: primitive.NewObjectID(), Name: "Action"}},
	}
}

func expectCreate(f generateFixture, newID primitive.ObjectID) {
	f.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*blog_models.BlogPost")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*blog_models.BlogPost).ID = newID
		}).
		Return(nil).Once()
}

func TestGenerateForMangaCreatesPost(t *testing.T) {
	f := newGenerateFixture(t)
	manga := sampleManga()
	newID := primitive.NewObjectID()

	f.postRepo.On("GetByMangaID", mock.Anything, manga.ID).Return(nil, nil).Once()
	f.mangaRepo.On("GetByID", mock.Anything, manga.ID).Return(manga, nil).Once()
	f.writer.On("Complete", mock.Anything, BuildPrompt(manga)).Return("## Tower of God\n\nClimb.", nil).Once()
	f.postRepo.On("GetBySlug", mock.Anything, "tower-of-god").Return(nil, nil).Once()
	expectCreate(f, newID)

	post, err := f.uc.GenerateForManga(context.Background(), manga.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, newID, post.ID)
	assert.Equal(t, "Tower of God - An In-Depth Look at This Fantasy Manga", post.Title)
	assert.Equal(t, "tower-of-god", post.Slug)
	assert.Equal(t, "## Tower of God\n\nClimb.", post.Content)
	assert.Equal(t, manga.ID, post.MangaID)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), post.PublishedDate)
	assert.Equal(t, "Tower of God, manga, manhwa, Fantasy, Action", post.SEOKeywords)
	assert.Equal(t, manga.CoverImage, post.FeaturedImage)
	assert.Nil(t, post.Manga)
}

func TestGenerateForMangaReturnsExisting(t *testing.T) {
	f := newGenerateFixture(t)
	mangaID := primitive.NewObjectID()
	existing := &blog_models.BlogPost{ID: primitive.NewObjectID(), MangaID: mangaID, Slug: "already-here"}
	f.postRepo.On("GetByMangaID", mock.Anything, mangaID).Return(existing, nil).Once()

	post, err := f.uc.GenerateForManga(context.Background(), mangaID.Hex())
	require.NoError(t, err)
	assert.Same(t, existing, post)
}

func TestGenerateForMangaSlugCollision(t *testing.T) {
	f := newGenerateFixture(t)
	manga := sampleManga()

	f.postRepo.On("GetByMangaID", mock.Anything, manga.ID).Return(nil, nil).Once()
	f.mangaRepo.On("GetByID", mock.Anything, manga.ID).Return(manga, nil).Once()
	f.writer.On("Complete", mock.Anything, mock.Anything).Return("content", nil).Once()
	f.postRepo.On("GetBySlug", mock.Anything, "tower-of-god").
		Return(&blog_models.BlogPost{ID: primitive.NewObjectID(), Slug: "tower-of-god"}, nil).Once()
	expectCreate(f, primitive.NewObjectID())

	post, err := f.uc.GenerateForManga(context.Background(), manga.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "tower-of-god-"+manga.ID.Hex(), post.Slug)
}

func TestGenerateForMangaFailures(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newGenerateFixture(t)
		_, err := f.uc.GenerateForManga(context.Background(), "xyz")
		assert.ErrorIs(t, err, usecase.ErrInvalidID)
	})

	t.Run("unknown manga", func(t *testing.T) {
		f := newGenerateFixture(t)
		id := primitive.NewObjectID()
		f.postRepo.On("GetByMangaID", mock.Anything, id).Return(nil, nil).Once()
		f.mangaRepo.On("GetByID", mock.Anything, id).
			Return(nil, fmt.Errorf("failed to get entity: %w", domain.ErrNotFound)).Once()

		_, err := f.uc.GenerateForManga(context.Background(), id.Hex())
		assert.ErrorIs(t, err, blog_models.ErrMangaNotFound)
	})

	t.Run("writer unavailable", func(t *testing.T) {
		f := newGenerateFixture(t)
		manga := sampleManga()
		f.postRepo.On("GetByMangaID", mock.Anything, manga.ID).Return(nil, nil).Once()
		f.mangaRepo.On("GetByID", mock.Anything, manga.ID).Return(manga, nil).Once()
		f.writer.On("Complete", mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: circuit breaker is open", blog_models.ErrLLMUnavailable)).Once()

		_, err := f.uc.GenerateForManga(context.Background(), manga.ID.Hex())
		assert.ErrorIs(t, err, blog_models.ErrLLMUnavailable)
		f.postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("existing without force", func(t *testing.T) {
		f := newGenerateFixture(t)
		mangaID := primitive.NewObjectID()
		existing := &blog_models.BlogPost{ID: primitive.NewObjectID(), MangaID: mangaID}
		f.postRepo.On("GetByMangaID", mock.Anything, mangaID).Return(existing, nil).Once()

		post, err := f.uc.Generate(context.Background(), mangaID.Hex(), false)
		assert.ErrorIs(t, err, blog_models.ErrPostExists)
		assert.Equal(t, existing.ID, post.ID)
		f.postRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("force replaces the post", func(t *testing.T) {
		f := newGenerateFixture(t)
		manga := sampleManga()
		existing := &blog_models.BlogPost{ID: primitive.NewObjectID(), MangaID: manga.ID, Slug: "tower-of-god"}
		newID := primitive.NewObjectID()

		f.postRepo.On("GetByMangaID", mock.Anything, manga.ID).Return(existing, nil).Once()
		f.postRepo.On("DeleteByID", mock.Anything, existing.ID).Return(nil).Once()
		f.postRepo.On("GetByMangaID", mock.Anything, manga.ID).Return(nil, nil).Once()
		f.mangaRepo.On("GetByID", mock.Anything, manga.ID).Return(manga, nil).Once()
		f.writer.On("Complete", mock.Anything, mock.Anything).Return("fresh", nil).Once()
		f.postRepo.On("GetBySlug", mock.Anything, "tower-of-god").Return(nil, nil).Once()
		expectCreate(f, newID)

		post, err := f.uc.Generate(context.Background(), manga.ID.Hex(), true)
		require.NoError(t, err)
		assert.Equal(t, newID, post.ID)
		assert.Equal(t, "tower-of-god", post.Slug)
		assert.Equal(t, "fresh", post.Content)
	})
}

func TestStatus(t *testing.T) {
	f := newGenerateFixture(t)
	withPost, withoutPost := primitive.NewObjectID(), primitive.NewObjectID()
	existing := &blog_models.BlogPost{
		ID:            primitive.NewObjectID(),
		Slug:          "tower-of-god",
		Title:         "Tower of God - An In-Depth Look at This Fantasy Manga",
		PublishedDate: fixedNow,
	}
	f.postRepo.On("GetByMangaID", mock.Anything, withPost).Return(existing, nil).Once()
	f.postRepo.On("GetByMangaID", mock.Anything, withoutPost).Return(nil, nil).Once()

	status, err := f.uc.Status(context.Background(), withPost.Hex())
	require.NoError(t, err)
	assert.Equal(t, blog_models.GenerationStatus{
		Exists:        true,
		BlogPostID:    existing.ID.Hex(),
		BlogPostSlug:  "tower-of-god",
		Title:         existing.Title,
		PublishedDate: fixedNow,
	}, status)

	status, err = f.uc.Status(context.Background(), withoutPost.Hex())
	assert.ErrorIs(t, err, blog_models.ErrPostNotFound)
	assert.False(t, status.Exists)
}
