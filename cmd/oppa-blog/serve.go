package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/route"
	"github.com/manhva-oppa/oppa-blog/bootstrap"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository/repository_blog"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_blog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

var watchInserts bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&watchInserts, "watch", false, "generate a post for every manga inserted while serving (needs a replica set)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := bootstrap.App(configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	env := app.Env
	if err := env.ValidateServer(); err != nil {
		return err
	}

	db := app.Database()
	mongo.CreateIndexes(db, app.Logger)

	if !env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	route.Setup(env, env.Timeout(), db, app.Writer, app.Logger, engine)

	// Deferred before stop, so it runs after ctx is cancelled and before
	// app.Close disconnects mongo.
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if watchInserts {
		postRepo := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
		mangaRepo := repository_blog.NewMangaRepository(db, domain.CollectionMangaEntries)
		generator := usecase_blog.NewGenerateUsecase(postRepo, mangaRepo, app.Writer, app.Logger, env.Timeout())
		watcher := usecase_blog.NewAutoGenerateWatcher(mangaRepo, generator, app.Logger)
		runBackground(ctx, &wg, app.Logger, "manga watcher", watcher.Run)
	}

	srv := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("server listening", zap.String("addr", env.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runBackground starts run on its own goroutine, tracked by wg.
func runBackground(ctx context.Context, wg *sync.WaitGroup, logger *zap.Logger, name string, run func(context.Context) error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := run(ctx); err != nil {
			logger.Error(name+" stopped", zap.Error(err))
		}
	}()
}
