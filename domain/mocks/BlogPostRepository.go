package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
	primitive "go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPostRepository is a mock type for the BlogPostRepository type
type BlogPostRepository struct {
	mock.Mock
}

func (_m *BlogPostRepository) Create(ctx context.Context, post *blog_models.BlogPost) error {
	ret := _m.Called(ctx, post)
	return ret.Error(0)
}

func (_m *BlogPostRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*blog_models.BlogPost, error) {
	ret := _m.Called(ctx, slug)

	var r0 *blog_models.BlogPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.BlogPost)
	}
	return r0, ret.Error(1)
}

func (_m *BlogPostRepository) GetByMangaID(ctx context.Context, mangaID primitive.ObjectID) (*blog_models.BlogPost, error) {
	ret := _m.Called(ctx, mangaID)

	var r0 *blog_models.BlogPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.BlogPost)
	}
	return r0, ret.Error(1)
}

func (_m *BlogPostRepository) Find(ctx context.Context, query blog_models.PostQuery) ([]blog_models.BlogPost, error) {
	ret := _m.Called(ctx, query)

	var r0 []blog_models.BlogPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]blog_models.BlogPost)
	}
	return r0, ret.Error(1)
}

func (_m *BlogPostRepository) Count(ctx context.Context, query blog_models.PostQuery) (int64, error) {
	ret := _m.Called(ctx, query)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *BlogPostRepository) ListKeywordFields(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

func (_m *BlogPostRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewBlogPostRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlogPostRepository {
	m := &BlogPostRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
