package repository_app_config

import (
	"context"
	"fmt"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type socialLinkRepository struct {
	base *repository.BaseMongoRepository[domain_app_config.SocialLink]
}

func NewSocialLinkRepository(db mongo.Database, collection string) domain_app_config.SocialLinkRepository {
	return &socialLinkRepository{
		base: repository.NewBaseMongoRepository[domain_app_config.SocialLink](db, collection),
	}
}

func (r *socialLinkRepository) ListOrdered(ctx context.Context, includeInactive bool) ([]domain_app_config.SocialLink, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["active"] = true
	}

	ptrs, err := r.base.GetPaginated(ctx, filter, 0, 0, "display_order", true)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}

	links := make([]domain_app_config.SocialLink, 0, len(ptrs))
	for _, p := range ptrs {
		if p != nil {
			links = append(links, *p)
		}
	}
	return links, nil
}
