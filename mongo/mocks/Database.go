package mocks

import (
	mongo "github.com/manhva-oppa/oppa-blog/mongo"
	mock "github.com/stretchr/testify/mock"
)

type Database struct {
	mock.Mock
}

func (_m *Database) Collection(name string) mongo.Collection {
	ret := _m.Called(name)

	var r0 mongo.Collection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.Collection)
	}
	return r0
}

func (_m *Database) Client() mongo.Client {
	ret := _m.Called()

	var r0 mongo.Client
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(mongo.Client)
	}
	return r0
}

func NewDatabase(t interface {
	mock.TestingT
	Cleanup(func())
}) *Database {
	m := &Database{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
