package mocks

import (
	context "context"

	blog_models "github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	mock "github.com/stretchr/testify/mock"
)

// CompletionClient is a mock type for the CompletionClient type
type CompletionClient struct {
	mock.Mock
}

func (_m *CompletionClient) Complete(ctx context.Context, prompt blog_models.CompletionPrompt) (string, error) {
	ret := _m.Called(ctx, prompt)
	return ret.String(0), ret.Error(1)
}

func NewCompletionClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *CompletionClient {
	m := &CompletionClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
