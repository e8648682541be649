package mocks

import (
	context "context"

	mongo "github.com/manhva-oppa/oppa-blog/mongo"
	mock "github.com/stretchr/testify/mock"
	driver "go.mongodb.org/mongo-driver/mongo"
	options "go.mongodb.org/mongo-driver/mongo/options"
)

// Collection records calls without their option arguments.
type Collection struct {
	mock.Mock
}

func (_m *Collection) FindOne(ctx context.Context, filter interface{}, _ ...*options.FindOneOptions) mongo.SingleResult {
	ret := _m.Called(ctx, filter)

	var r0 mongo.SingleResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.SingleResult)
	}
	return r0
}

func (_m *Collection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	ret := _m.Called(ctx, document)
	return ret.Get(0), ret.Error(1)
}

func (_m *Collection) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *Collection) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *Collection) Find(ctx context.Context, filter interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
	ret := _m.Called(ctx, filter)

	var r0 mongo.Cursor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.Cursor)
	}
	return r0, ret.Error(1)
}

func (_m *Collection) CountDocuments(ctx context.Context, filter interface{}, _ ...*options.CountOptions) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *Collection) Aggregate(ctx context.Context, pipeline interface{}) (mongo.Cursor, error) {
	ret := _m.Called(ctx, pipeline)

	var r0 mongo.Cursor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.Cursor)
	}
	return r0, ret.Error(1)
}

func (_m *Collection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*driver.UpdateResult, error) {
	ret := _m.Called(ctx, filter, update)

	var r0 *driver.UpdateResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*driver.UpdateResult)
	}
	return r0, ret.Error(1)
}

func (_m *Collection) Watch(ctx context.Context, pipeline interface{}, _ ...*options.ChangeStreamOptions) (mongo.ChangeStream, error) {
	ret := _m.Called(ctx, pipeline)

	var r0 mongo.ChangeStream
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.ChangeStream)
	}
	return r0, ret.Error(1)
}

func (_m *Collection) Indexes() mongo.IndexView {
	ret := _m.Called()

	var r0 mongo.IndexView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.IndexView)
	}
	return r0
}

func NewCollection(t interface {
	mock.TestingT
	Cleanup(func())
}) *Collection {
	m := &Collection{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
