package usecase_blog

import (
	"context"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	watchRetryMin = time.Second
	watchRetryMax = time.Minute
)

// AutoGenerateWatcher writes a blog post for every manga inserted into the
// catalog while it runs.
type AutoGenerateWatcher struct {
	mangaRepo blog_interface.MangaRepository
	generator blog_interface.GenerateUsecase
	logger    *zap.Logger
	retryMin  time.Duration
	retryMax  time.Duration
}

func NewAutoGenerateWatcher(
	mangaRepo blog_interface.MangaRepository,
	generator blog_interface.GenerateUsecase,
	logger *zap.Logger,
) *AutoGenerateWatcher {
	return &AutoGenerateWatcher{
		mangaRepo: mangaRepo,
		generator: generator,
		logger:    logger,
		retryMin:  watchRetryMin,
		retryMax:  watchRetryMax,
	}
}

// Run blocks until ctx ends. A broken change stream is reopened with
// exponential backoff.
func (w *AutoGenerateWatcher) Run(ctx context.Context) error {
	delay := w.retryMin
	for {
		w.logger.Info("watching manga inserts")
		started := time.Now()

		err := w.mangaRepo.WatchInserts(ctx, w.handleInsert)
		if ctx.Err() != nil {
			w.logger.Info("manga insert watcher stopped")
			return nil
		}

		if time.Since(started) > w.retryMax {
			delay = w.retryMin
		}
		w.logger.Error("manga change stream failed, retrying",
			zap.Error(err), zap.Duration("retry_in", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		delay *= 2
		if delay > w.retryMax {
			delay = w.retryMax
		}
	}
}

func (w *AutoGenerateWatcher) handleInsert(ctx context.Context, id primitive.ObjectID) {
	w.logger.Info("new manga detected", zap.String("manga_id", id.Hex()))
	// GenerateForManga logs its own outcome.
	_, _ = w.generator.GenerateForManga(ctx, id.Hex())
}
