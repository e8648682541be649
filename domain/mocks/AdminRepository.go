package mocks

import (
	context "context"

	domain_admin "github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	mock "github.com/stretchr/testify/mock"
)

type AdminRepository struct {
	mock.Mock
}

func (_m *AdminRepository) Create(ctx context.Context, admin *domain_admin.Admin) error {
	ret := _m.Called(ctx, admin)
	return ret.Error(0)
}

func (_m *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain_admin.Admin, error) {
	ret := _m.Called(ctx, email)

	var r0 *domain_admin.Admin
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_admin.Admin)
	}
	return r0, ret.Error(1)
}

func (_m *AdminRepository) GetByUserID(ctx context.Context, userID string) (*domain_admin.Admin, error) {
	ret := _m.Called(ctx, userID)

	var r0 *domain_admin.Admin
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_admin.Admin)
	}
	return r0, ret.Error(1)
}

func NewAdminRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AdminRepository {
	m := &AdminRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
