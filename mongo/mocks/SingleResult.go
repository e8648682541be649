package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

type SingleResult struct {
	mock.Mock
}

func (_m *SingleResult) Decode(v interface{}) error {
	ret := _m.Called(v)
	return ret.Error(0)
}

func NewSingleResult(t interface {
	mock.TestingT
	Cleanup(func())
}) *SingleResult {
	m := &SingleResult{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
