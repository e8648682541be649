package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
	bson "go.mongodb.org/mongo-driver/bson"
	primitive "go.mongodb.org/mongo-driver/bson/primitive"
)

// MangaRepository is a mock type for the MangaRepository type
type MangaRepository struct {
	mock.Mock
}

func (_m *MangaRepository) Create(ctx context.Context, entity *blog_models.Manga) error {
	ret := _m.Called(ctx, entity)
	return ret.Error(0)
}

func (_m *MangaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*blog_models.Manga, error) {
	ret := _m.Called(ctx, id)

	var r0 *blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.Manga)
	}
	return r0, ret.Error(1)
}

func (_m *MangaRepository) Update(ctx context.Context, entity *blog_models.Manga) error {
	ret := _m.Called(ctx, entity)
	return ret.Error(0)
}

func (_m *MangaRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	ret := _m.Called(ctx, id, update)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MangaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MangaRepository) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MangaRepository) GetByFilter(ctx context.Context, filter interface{}) ([]*blog_models.Manga, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*blog_models.Manga)
	}
	return r0, ret.Error(1)
}

func (_m *MangaRepository) GetOneByFilter(ctx context.Context, filter interface{}) (*blog_models.Manga, error) {
	ret := _m.Called(ctx, filter)

	var r0 *blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*blog_models.Manga)
	}
	return r0, ret.Error(1)
}

func (_m *MangaRepository) Count(ctx context.Context, filter interface{}) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MangaRepository) GetPaginated(ctx context.Context, filter interface{}, skip int64, limit int64, sortField string, ascending bool) ([]*blog_models.Manga, error) {
	ret := _m.Called(ctx, filter, skip, limit, sortField, ascending)

	var r0 []*blog_models.Manga
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*blog_models.Manga)
	}
	return r0, ret.Error(1)
}

func (_m *MangaRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MangaRepository) WatchInserts(ctx context.Context, handle func(context.Context, primitive.ObjectID)) error {
	ret := _m.Called(ctx, handle)

	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context, primitive.ObjectID)) error); ok {
		return rf(ctx, handle)
	}
	return ret.Error(0)
}

func NewMangaRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MangaRepository {
	m := &MangaRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
