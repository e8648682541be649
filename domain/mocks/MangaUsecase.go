package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
)

type MangaUsecase struct {
	mock.Mock
}

func (_m *MangaUsecase) Create(ctx context.Context, entity *blog_models.Manga) (*blog_models.Manga, error) {
	ret := _m.Called(ctx, entity)

	var r0 *blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.Manga)
	}
	return r0, ret.Error(1)
}

func (_m *MangaUsecase) GetByID(ctx context.Context, id string) (*blog_models.Manga, error) {
	ret := _m.Called(ctx, id)

	var r0 *blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.Manga)
	}
	return r0, ret.Error(1)
}

func (_m *MangaUsecase) Update(ctx context.Context, entity *blog_models.Manga) error {
	ret := _m.Called(ctx, entity)
	return ret.Error(0)
}

func (_m *MangaUsecase) UpdateByID(ctx context.Context, id string, updates map[string]interface{}) error {
	ret := _m.Called(ctx, id, updates)
	return ret.Error(0)
}

func (_m *MangaUsecase) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MangaUsecase) DeleteByIDs(ctx context.Context, ids []string) error {
	ret := _m.Called(ctx, ids)
	return ret.Error(0)
}

func (_m *MangaUsecase) GetPaginated(ctx context.Context, page int, pageSize int) ([]*blog_models.Manga, int64, error) {
	ret := _m.Called(ctx, page, pageSize)

	var r0 []*blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*blog_models.Manga)
	}
	return r0, ret.Get(1).(int64), ret.Error(2)
}

func (_m *MangaUsecase) Exists(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func NewMangaUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MangaUsecase {
	m := &MangaUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
