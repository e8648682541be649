package usecase_app_config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSocialMediaLinks(t *testing.T) {
	repo := mocks.NewSocialLinkRepository(t)
	repo.On("ListOrdered", mock.Anything, false).Return([]domain_app_config.SocialLink{
		{Platform: "Twitter", URL: "https://twitter.com/oppa", DisplayOrder: 1, Active: true},
		{Platform: "friendster", URL: "https://friendster.example/oppa", DisplayOrder: 2, Active: true},
	}, nil).Once()

	uc := NewSocialLinkUsecase(repo, zap.NewNop(), time.Second)
	got := uc.GetSocialMediaLinks(context.Background(), false)

	require.Len(t, got, 2)
	assert.Equal(t, SocialIcon("twitter"), got[0].Icon)
	assert.Equal(t, SocialIcon("link"), got[1].Icon)
	assert.Equal(t, "https://twitter.com/oppa", got[0].URL)
}

func TestGetSocialMediaLinksStoreError(t *testing.T) {
	repo := mocks.NewSocialLinkRepository(t)
	repo.On("ListOrdered", mock.Anything, true).Return(nil, errors.New("boom")).Once()

	uc := NewSocialLinkUsecase(repo, zap.NewNop(), time.Second)
	got := uc.GetSocialMediaLinks(context.Background(), true)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSocialIconFallback(t *testing.T) {
	assert.NotEmpty(t, SocialIcon("GitHub"))
	assert.Equal(t, SocialIcon("github"), SocialIcon("  GitHub "))
	assert.Equal(t, SocialIcon("link"), SocialIcon("myspace"))
}
