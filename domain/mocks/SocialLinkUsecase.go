package mocks

import (
	context "context"

	domain_app_config "github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	mock "github.com/stretchr/testify/mock"
)

type SocialLinkUsecase struct {
	mock.Mock
}

func (_m *SocialLinkUsecase) GetSocialMediaLinks(ctx context.Context, includeInactive bool) []domain_app_config.SocialLinkView {
	ret := _m.Called(ctx, includeInactive)
	return ret.Get(0).([]domain_app_config.SocialLinkView)
}

func NewSocialLinkUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *SocialLinkUsecase {
	m := &SocialLinkUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
