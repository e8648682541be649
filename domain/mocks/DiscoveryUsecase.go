package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
)

type DiscoveryUsecase struct {
	mock.Mock
}

func (_m *DiscoveryUsecase) ListPosts(ctx context.Context, query blog_models.PostQuery) []blog_models.BlogPost {
	ret := _m.Called(ctx, query)
	return ret.Get(0).([]blog_models.BlogPost)
}

func (_m *DiscoveryUsecase) SearchBlogPosts(ctx context.Context, query string, tags []string, limit int) blog_models.SearchResult {
	ret := _m.Called(ctx, query, tags, limit)
	return ret.Get(0).(blog_models.SearchResult)
}

func (_m *DiscoveryUsecase) GetPopularTags(ctx context.Context, limit int) []blog_models.TagCount {
	ret := _m.Called(ctx, limit)
	return ret.Get(0).([]blog_models.TagCount)
}

func NewDiscoveryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *DiscoveryUsecase {
	m := &DiscoveryUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
