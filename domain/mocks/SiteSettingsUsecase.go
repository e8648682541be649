package mocks

import (
	context "context"

	domain_app_config "github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	mock "github.com/stretchr/testify/mock"
)

type SiteSettingsUsecase struct {
	mock.Mock
}

func (_m *SiteSettingsUsecase) GetSiteConfig(ctx context.Context) domain_app_config.SiteSettings {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain_app_config.SiteSettings)
}

func (_m *SiteSettingsUsecase) SiteTitle(ctx context.Context) string {
	ret := _m.Called(ctx)
	return ret.String(0)
}

func (_m *SiteSettingsUsecase) SiteDescription(ctx context.Context) string {
	ret := _m.Called(ctx)
	return ret.String(0)
}

func (_m *SiteSettingsUsecase) UpdateSettings(ctx context.Context, patch domain_app_config.SiteSettingsPatch) error {
	ret := _m.Called(ctx, patch)
	return ret.Error(0)
}

func NewSiteSettingsUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *SiteSettingsUsecase {
	m := &SiteSettingsUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
