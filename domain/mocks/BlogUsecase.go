package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
)

type BlogUsecase struct {
	mock.Mock
}

func (_m *BlogUsecase) ListBlogPosts(ctx context.Context, query blog_models.PostQuery) blog_models.PostPage {
	ret := _m.Called(ctx, query)
	return ret.Get(0).(blog_models.PostPage)
}

func (_m *BlogUsecase) GetBlogPostBySlug(ctx context.Context, slug string) (*blog_models.BlogPost, error) {
	ret := _m.Called(ctx, slug)

	var r0 *blog_models.BlogPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.BlogPost)
	}
	return r0, ret.Error(1)
}

func (_m *BlogUsecase) GetLatestBlogPosts(ctx context.Context, limit int) []blog_models.BlogPost {
	ret := _m.Called(ctx, limit)
	return ret.Get(0).([]blog_models.BlogPost)
}

func (_m *BlogUsecase) GetRelatedBlogPosts(ctx context.Context, mangaID string, limit int) []blog_models.RelatedPost {
	ret := _m.Called(ctx, mangaID, limit)
	return ret.Get(0).([]blog_models.RelatedPost)
}

func NewBlogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlogUsecase {
	m := &BlogUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
