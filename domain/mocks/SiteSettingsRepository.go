package mocks

import (
	context "context"

	domain_app_config "github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	mock "github.com/stretchr/testify/mock"
)

type SiteSettingsRepository struct {
	mock.Mock
}

func (_m *SiteSettingsRepository) Get(ctx context.Context) (*domain_app_config.SiteSettingsDocument, error) {
	ret := _m.Called(ctx)

	var r0 *domain_app_config.SiteSettingsDocument
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_app_config.SiteSettingsDocument)
	}
	return r0, ret.Error(1)
}

func (_m *SiteSettingsRepository) Upsert(ctx context.Context, config *domain_app_config.SiteSettingsDocument) error {
	ret := _m.Called(ctx, config)
	return ret.Error(0)
}

func NewSiteSettingsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SiteSettingsRepository {
	m := &SiteSettingsRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
