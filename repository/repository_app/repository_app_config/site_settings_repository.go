package repository_app_config

import (
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository"
)

// NewSiteSettingsRepository stores the site settings as one document whose
// payload lives under "settings".
func NewSiteSettingsRepository(db mongo.Database, collection string) domain_app_config.SiteSettingsRepository {
	return repository.NewConfigMongoRepository[domain_app_config.SiteSettingsDocument](
		db, collection, domain_app_config.SiteSettingsID,
	)
}
