package controller_app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_app/domain_app_config"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSiteSettingsController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := mocks.NewSiteSettingsUsecase(t)
	ctrl := NewSiteSettingsController(uc)
	r := gin.New()
	r.GET("/settings", ctrl.GetSettingsHandler)
	r.PUT("/settings", ctrl.UpdateSettingsHandler)

	do := func(method, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/settings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	current := domain_app_config.DefaultSiteSettings()

	t.Run("get", func(t *testing.T) {
		uc.On("GetSiteConfig", mock.Anything).Return(current).Once()

		w := do(http.MethodGet, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), current.SiteTitle)
	})

	t.Run("update sends only the given fields", func(t *testing.T) {
		uc.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(p domain_app_config.SiteSettingsPatch) bool {
			return p.SiteTitle != nil && *p.SiteTitle == "Oppa" && p.SiteDescription == nil
		})).Return(nil).Once()
		updated := current
		updated.SiteTitle = "Oppa"
		uc.On("GetSiteConfig", mock.Anything).Return(updated).Once()

		w := do(http.MethodPut, `{"siteTitle":"Oppa"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"siteTitle":"Oppa"`)
	})

	t.Run("update failure", func(t *testing.T) {
		uc.On("UpdateSettings", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()

		assert.Equal(t, http.StatusInternalServerError, do(http.MethodPut, `{}`).Code)
	})

	t.Run("bad json", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(http.MethodPut, `{"siteTitle":`).Code)
	})
}
