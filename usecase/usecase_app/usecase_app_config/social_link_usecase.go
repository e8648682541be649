package usecase_app_config

import (
	"context"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"go.uber.org/zap"
)

type socialLinkUsecase struct {
	repo    domain_app_config.SocialLinkRepository
	logger  *zap.Logger
	timeout time.Duration
}

func NewSocialLinkUsecase(
	repo domain_app_config.SocialLinkRepository,
	logger *zap.Logger,
	timeout time.Duration,
) domain_app_config.SocialLinkUsecase {
	return &socialLinkUsecase{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
	}
}

// GetSocialMediaLinks returns an empty list when the store fails.
func (uc *socialLinkUsecase) GetSocialMediaLinks(ctx context.Context, includeInactive bool) []domain_app_config.SocialLinkView {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	links, err := uc.repo.ListOrdered(ctx, includeInactive)
	if err != nil {
		uc.logger.Error("failed to fetch social media links", zap.Error(err))
		return []domain_app_config.SocialLinkView{}
	}

	views := make([]domain_app_config.SocialLinkView, 0, len(links))
	for _, link := range links {
		views = append(views, domain_app_config.SocialLinkView{
			SocialLink: link,
			Icon:       SocialIcon(link.Platform),
		})
	}
	return views
}
