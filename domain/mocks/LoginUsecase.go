package mocks

import (
	context "context"

	domain_admin "github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	mock "github.com/stretchr/testify/mock"
)

type LoginUsecase struct {
	mock.Mock
}

func (_m *LoginUsecase) Login(ctx context.Context, request domain_admin.LoginRequest) (domain_admin.LoginResponse, error) {
	ret := _m.Called(ctx, request)
	return ret.Get(0).(domain_admin.LoginResponse), ret.Error(1)
}

func (_m *LoginUsecase) IsAdmin(ctx context.Context, userID string) (bool, error) {
	ret := _m.Called(ctx, userID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *LoginUsecase) CreateAdmin(ctx context.Context, name string, email string, password string) (*domain_admin.Admin, error) {
	ret := _m.Called(ctx, name, email, password)

	var r0 *domain_admin.Admin
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_admin.Admin)
	}
	return r0, ret.Error(1)
}

func NewLoginUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *LoginUsecase {
	m := &LoginUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
