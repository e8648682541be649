package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
)

type GenerateUsecase struct {
	mock.Mock
}

func (_m *GenerateUsecase) GenerateForManga(ctx context.Context, mangaID string) (*blog_models.BlogPost, error) {
	ret := _m.Called(ctx, mangaID)

	var r0 *blog_models.BlogPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.BlogPost)
	}
	return r0, ret.Error(1)
}

func (_m *GenerateUsecase) Generate(ctx context.Context, mangaID string, force bool) (*blog_models.BlogPost, error) {
	ret := _m.Called(ctx, mangaID, force)

	var r0 *blog_models.BlogPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.BlogPost)
	}
	return r0, ret.Error(1)
}

func (_m *GenerateUsecase) Status(ctx context.Context, mangaID string) (blog_models.GenerationStatus, error) {
	ret := _m.Called(ctx, mangaID)
	return ret.Get(0).(blog_models.GenerationStatus), ret.Error(1)
}

func NewGenerateUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *GenerateUsecase {
	m := &GenerateUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
