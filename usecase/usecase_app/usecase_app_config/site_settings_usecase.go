package usecase_app_config

import (
	"context"
	"fmt"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/internal/metrics"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"go.uber.org/zap"
)

type siteSettingsUsecase struct {
	config usecase.ConfigUsecase[domain_app_config.SiteSettingsDocument]
	cache  *SettingsCache
	logger *zap.Logger
	now    func() time.Time
}

func NewSiteSettingsUsecase(
	repo domain_app_config.SiteSettingsRepository,
	cache *SettingsCache,
	logger *zap.Logger,
	timeout time.Duration,
) domain_app_config.SiteSettingsUsecase {
	return &siteSettingsUsecase{
		config: usecase.NewConfigUsecase[domain_app_config.SiteSettingsDocument](repo, timeout),
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *siteSettingsUsecase) fetch(ctx context.Context) (*domain_app_config.SiteSettingsPatch, error) {
	doc, err := uc.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return &doc.Settings, nil
}

func (uc *siteSettingsUsecase) GetSiteConfig(ctx context.Context) domain_app_config.SiteSettings {
	settings, outcome, err := uc.cache.Get(ctx, uc.now(), uc.fetch)
	if err != nil {
		uc.logger.Error("failed to fetch site settings", zap.String("served", string(outcome)), zap.Error(err))
	}
	metrics.RecordSettingsRead(string(outcome))
	return settings
}

func (uc *siteSettingsUsecase) SiteTitle(ctx context.Context) string {
	if title := uc.GetSiteConfig(ctx).SiteTitle; title != "" {
		return title
	}
	return uc.cache.defaults.SiteTitle
}

func (uc *siteSettingsUsecase) SiteDescription(ctx context.Context) string {
	if description := uc.GetSiteConfig(ctx).SiteDescription; description != "" {
		return description
	}
	return uc.cache.defaults.SiteDescription
}

// UpdateSettings overlays patch on the stored settings and drops the cached
// copy.
func (uc *siteSettingsUsecase) UpdateSettings(ctx context.Context, patch domain_app_config.SiteSettingsPatch) error {
	stored, err := uc.fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load site settings: %w", err)
	}
	next := patch
	if stored != nil {
		next = stored.Overlay(patch)
	}

	doc := &domain_app_config.SiteSettingsDocument{
		ID:       domain_app_config.SiteSettingsID,
		Settings: next,
	}
	if err := uc.config.Update(ctx, doc); err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	uc.cache.Invalidate()
	return nil
}
