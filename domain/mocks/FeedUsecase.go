package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

type FeedUsecase struct {
	mock.Mock
}

func (_m *FeedUsecase) RSS(ctx context.Context) ([]byte, error) {
	ret := _m.Called(ctx)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *FeedUsecase) Sitemap(ctx context.Context) ([]byte, error) {
	ret := _m.Called(ctx)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewFeedUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedUsecase {
	m := &FeedUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
