package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

type Cursor struct {
	mock.Mock
}

func (_m *Cursor) Close(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *Cursor) Next(ctx context.Context) bool {
	ret := _m.Called(ctx)
	return ret.Bool(0)
}

func (_m *Cursor) Decode(v interface{}) error {
	ret := _m.Called(v)
	return ret.Error(0)
}

func (_m *Cursor) All(ctx context.Context, results interface{}) error {
	ret := _m.Called(ctx, results)
	return ret.Error(0)
}

func (_m *Cursor) Err() error {
	ret := _m.Called()
	return ret.Error(0)
}

func NewCursor(t interface {
	mock.TestingT
	Cleanup(func())
}) *Cursor {
	m := &Cursor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
