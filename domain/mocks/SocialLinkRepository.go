package mocks

import (
	context "context"

	domain_app_config "github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	mock "github.com/stretchr/testify/mock"
)

type SocialLinkRepository struct {
	mock.Mock
}

func (_m *SocialLinkRepository) ListOrdered(ctx context.Context, includeInactive bool) ([]domain_app_config.SocialLink, error) {
	ret := _m.Called(ctx, includeInactive)

	var r0 []domain_app_config.SocialLink
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain_app_config.SocialLink)
	}
	return r0, ret.Error(1)
}

func NewSocialLinkRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SocialLinkRepository {
	m := &SocialLinkRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
