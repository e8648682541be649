package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manhva-oppa/oppa-blog/bootstrap"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/repository/repository_app/repository_app_config"
	"github.com/manhva-oppa/oppa-blog/repository/repository_blog"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_app/usecase_app_config"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_blog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var buildOutDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render rss.xml and sitemap.xml into a directory",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildOutDir, "out", "public", "output directory")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	app, err := bootstrap.App(configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	db := app.Database()
	timeout := app.Env.Timeout()
	settingsRepo := repository_app_config.NewSiteSettingsRepository(db, domain.CollectionSiteSettings)
	cache := usecase_app_config.NewSettingsCache(0, domain_app_config.DefaultSiteSettings())
	settings := usecase_app_config.NewSiteSettingsUsecase(settingsRepo, cache, app.Logger, timeout)
	postRepo := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
	feeds := usecase_blog.NewFeedUsecase(postRepo, settings, app.Env.SiteURL, app.Logger, timeout)

	if err := os.MkdirAll(buildOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx := cmd.Context()
	rss, err := feeds.RSS(ctx)
	if err != nil {
		return fmt.Errorf("render rss: %w", err)
	}
	sitemap, err := feeds.Sitemap(ctx)
	if err != nil {
		return fmt.Errorf("render sitemap: %w", err)
	}

	for name, body := range map[string][]byte{"rss.xml": rss, "sitemap.xml": sitemap} {
		path := filepath.Join(buildOutDir, name)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		app.Logger.Info("wrote feed", zap.String("path", path), zap.Int("bytes", len(body)))
	}
	return nil
}
