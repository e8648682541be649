package usecase_blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/internal/metrics"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type generateUsecase struct {
	postRepo  blog_interface.BlogPostRepository
	mangaRepo blog_interface.MangaRepository
	writer    blog_interface.CompletionClient
	logger    *zap.Logger
	timeout   time.Duration
	now       func() time.Time
}

func NewGenerateUsecase(
	postRepo blog_interface.BlogPostRepository,
	mangaRepo blog_interface.MangaRepository,
	writer blog_interface.CompletionClient,
	logger *zap.Logger,
	timeout time.Duration,
) blog_interface.GenerateUsecase {
	return &generateUsecase{
		postRepo:  postRepo,
		mangaRepo: mangaRepo,
		writer:    writer,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
	}
}

func (uc *generateUsecase) existingPost(ctx context.Context, mangaID string) (*blog_models.BlogPost, error) {
	id, err := usecase.ParseObjectID(mangaID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	post, err := uc.postRepo.GetByMangaID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up blog post for manga %s: %w", mangaID, err)
	}
	return post, nil
}

func (uc *generateUsecase) GenerateForManga(ctx context.Context, mangaID string) (*blog_models.BlogPost, error) {
	existing, err := uc.existingPost(ctx, mangaID)
	if err != nil {
		metrics.RecordGeneration("error")
		return nil, err
	}
	if existing != nil {
		uc.logger.Info("blog post already exists", zap.String("manga_id", mangaID), zap.String("slug", existing.Slug))
		metrics.RecordGeneration("exists")
		return existing, nil
	}

	post, err := uc.generate(ctx, mangaID)
	if err != nil {
		metrics.RecordGeneration("error")
		uc.logger.Error("blog post generation failed", zap.String("manga_id", mangaID), zap.Error(err))
		return nil, err
	}
	metrics.RecordGeneration("success")
	uc.logger.Info("blog post generated", zap.String("manga_id", mangaID), zap.String("slug", post.Slug))
	return post, nil
}

func (uc *generateUsecase) generate(ctx context.Context, mangaID string) (*blog_models.BlogPost, error) {
	id, err := usecase.ParseObjectID(mangaID)
	if err != nil {
		return nil, err
	}

	manga, err := uc.loadManga(ctx, id)
	if err != nil {
		return nil, err
	}

	// The completion client carries its own deadline.
	content, err := uc.writer.Complete(ctx, BuildPrompt(manga))
	if err != nil {
		return nil, fmt.Errorf("failed to write blog post: %w", err)
	}

	post := BuildPost(manga, content, uc.now())
	post.Manga = nil

	storeCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	taken, err := uc.postRepo.GetBySlug(storeCtx, post.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug %q: %w", post.Slug, err)
	}
	if taken != nil {
		post.Slug = post.Slug + "-" + manga.ID.Hex()
	}

	if err := uc.postRepo.Create(storeCtx, post); err != nil {
		return nil, fmt.Errorf("failed to save blog post: %w", err)
	}
	return post, nil
}

func (uc *generateUsecase) loadManga(ctx context.Context, id primitive.ObjectID) (*blog_models.Manga, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	mangaID := id.Hex()
	manga, err := uc.mangaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", blog_models.ErrMangaNotFound, mangaID)
		}
		return nil, fmt.Errorf("failed to fetch manga %s: %w", mangaID, err)
	}
	if manga == nil {
		return nil, fmt.Errorf("%w: %s", blog_models.ErrMangaNotFound, mangaID)
	}
	return manga, nil
}

func (uc *generateUsecase) Generate(ctx context.Context, mangaID string, force bool) (*blog_models.BlogPost, error) {
	existing, err := uc.existingPost(ctx, mangaID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if !force {
			metrics.RecordGeneration("exists")
			return existing, blog_models.ErrPostExists
		}

		delCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		err := uc.postRepo.DeleteByID(delCtx, existing.ID)
		cancel()
		if err != nil && !errors.Is(err, blog_models.ErrPostNotFound) {
			return nil, fmt.Errorf("failed to delete existing blog post: %w", err)
		}
		uc.logger.Info("deleted blog post for regeneration",
			zap.String("manga_id", mangaID), zap.String("post_id", existing.ID.Hex()))
	}

	return uc.GenerateForManga(ctx, mangaID)
}

func (uc *generateUsecase) Status(ctx context.Context, mangaID string) (blog_models.GenerationStatus, error) {
	existing, err := uc.existingPost(ctx, mangaID)
	if err != nil {
		return blog_models.GenerationStatus{}, err
	}
	if existing == nil {
		return blog_models.GenerationStatus{Exists: false}, blog_models.ErrPostNotFound
	}
	return blog_models.GenerationStatus{
		Exists:        true,
		BlogPostID:    existing.ID.Hex(),
		BlogPostSlug:  existing.Slug,
		Title:         existing.Title,
		PublishedDate: existing.PublishedDate,
	}, nil
}
