package usecase_app_config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSettingsUsecase(repo *mocks.SiteSettingsRepository) domain_app_config.SiteSettingsUsecase {
	cache := NewSettingsCache(time.Hour, domain_app_config.DefaultSiteSettings())
	return NewSiteSettingsUsecase(repo, cache, zap.NewNop(), time.Second)
}

func TestSiteSettingsUsecaseMergesAndCaches(t *testing.T) {
	repo := mocks.NewSiteSettingsRepository(t)
	repo.On("Get", mock.Anything).Return(&domain_app_config.SiteSettingsDocument{
		ID:       domain_app_config.SiteSettingsID,
		Settings: domain_app_config.SiteSettingsPatch{SiteTitle: strPtr("Oppa Weekly")},
	}, nil).Once()

	uc := newSettingsUsecase(repo)

	settings := uc.GetSiteConfig(context.Background())
	assert.Equal(t, "Oppa Weekly", settings.SiteTitle)
	assert.Equal(t, domain_app_config.DefaultSiteSettings().SiteDescription, settings.SiteDescription)

	// served from cache, Get is expected only once
	assert.Equal(t, "Oppa Weekly", uc.SiteTitle(context.Background()))
}

func TestSiteSettingsUsecaseFallsBackToDefaults(t *testing.T) {
	repo := mocks.NewSiteSettingsRepository(t)
	repo.On("Get", mock.Anything).Return(nil, errors.New("server selection timeout"))

	uc := newSettingsUsecase(repo)

	assert.Equal(t, domain_app_config.DefaultSiteSettings(), uc.GetSiteConfig(context.Background()))
	assert.Equal(t, "Manhva-Oppa Blog", uc.SiteTitle(context.Background()))
}

func TestSiteSettingsUsecaseBlankTitleUsesDefault(t *testing.T) {
	repo := mocks.NewSiteSettingsRepository(t)
	repo.On("Get", mock.Anything).Return(&domain_app_config.SiteSettingsDocument{
		Settings: domain_app_config.SiteSettingsPatch{SiteTitle: strPtr(""), SiteDescription: strPtr("")},
	}, nil).Once()

	uc := newSettingsUsecase(repo)

	assert.Equal(t, "Manhva-Oppa Blog", uc.SiteTitle(context.Background()))
	assert.Equal(t, domain_app_config.DefaultSiteSettings().SiteDescription, uc.SiteDescription(context.Background()))
}

func TestUpdateSettingsOverlaysStoredValues(t *testing.T) {
	repo := mocks.NewSiteSettingsRepository(t)
	stored := &domain_app_config.SiteSettingsDocument{
		ID: domain_app_config.SiteSettingsID,
		Settings: domain_app_config.SiteSettingsPatch{
			SiteTitle:   strPtr("Old Title"),
			AnalyticsID: strPtr("G-123"),
		},
	}
	repo.On("Get", mock.Anything).Return(stored, nil).Once()

	var saved *domain_app_config.SiteSettingsDocument
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain_app_config.SiteSettingsDocument")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain_app_config.SiteSettingsDocument) }).
		Return(nil).Once()

	uc := newSettingsUsecase(repo)
	err := uc.UpdateSettings(context.Background(), domain_app_config.SiteSettingsPatch{SiteTitle: strPtr("New Title")})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, domain_app_config.SiteSettingsID, saved.ID)
	assert.Equal(t, "New Title", *saved.Settings.SiteTitle)
	assert.Equal(t, "G-123", *saved.Settings.AnalyticsID)
	assert.Nil(t, saved.Settings.SiteDescription)

	// the cache was dropped, so the next read goes back to the store
	repo.On("Get", mock.Anything).Return(saved, nil).Once()
	assert.Equal(t, "New Title", uc.SiteTitle(context.Background()))
}
