package controller_admin

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	login := func(lu *mocks.LoginUsecase, body string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/login", NewLoginController(lu).Login)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	request := domain_admin.LoginRequest{Email: "admin@oppa.blog", Password: "hunter22"}
	body := `{"email":"admin@oppa.blog","password":"hunter22"}`

	t.Run("malformed body", func(t *testing.T) {
		w := login(mocks.NewLoginUsecase(t), `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		lu := mocks.NewLoginUsecase(t)
		lu.On("Login", mock.Anything, request).Return(domain_admin.LoginResponse{}, blog_models.ErrInvalidCredentials).Once()

		w := login(lu, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("store failure", func(t *testing.T) {
		lu := mocks.NewLoginUsecase(t)
		lu.On("Login", mock.Anything, request).Return(domain_admin.LoginResponse{}, errors.New("db down")).Once()

		assert.Equal(t, http.StatusInternalServerError, login(lu, body).Code)
	})

	t.Run("issues token", func(t *testing.T) {
		lu := mocks.NewLoginUsecase(t)
		lu.On("Login", mock.Anything, request).Return(domain_admin.LoginResponse{AccessToken: "tok"}, nil).Once()

		w := login(lu, body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"accessToken":"tok"}`, w.Body.String())
	})
}
