package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/manhva-oppa/oppa-blog/internal/tokenutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(lu domain_admin.LoginUsecase) *gin.Engine {
	r := gin.New()
	r.POST("/generate", JwtAuthMiddleware(secret), AdminOnly(lu, zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey))
	})
	return r
}

func bearer(t *testing.T, userID string) string {
	token, err := tokenutil.CreateAccessToken(&domain_admin.Admin{UserID: userID, Name: "n"}, secret, 1)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestJwtAndAdminMiddleware(t *testing.T) {
	cases := []struct {
		name   string
		header string
		setup  func(lu *mocks.LoginUsecase)
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer garbage", status: http.StatusUnauthorized},
		{
			name:   "not an admin",
			header: bearer(t, "user-1"),
			setup: func(lu *mocks.LoginUsecase) {
				lu.On("IsAdmin", mock.Anything, "user-1").Return(false, nil).Once()
			},
			status: http.StatusForbidden,
		},
		{
			name:   "lookup error",
			header: bearer(t, "user-2"),
			setup: func(lu *mocks.LoginUsecase) {
				lu.On("IsAdmin", mock.Anything, "user-2").Return(false, errors.New("down")).Once()
			},
			status: http.StatusInternalServerError,
		},
		{
			name:   "admin",
			header: bearer(t, "admin-1"),
			setup: func(lu *mocks.LoginUsecase) {
				lu.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil).Once()
			},
			status: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lu := mocks.NewLoginUsecase(t)
			if tc.setup != nil {
				tc.setup(lu)
			}

			req := httptest.NewRequest(http.MethodPost, "/generate", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			protectedRouter(lu).ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "admin-1", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/generate", RateLimit(NewRateLimiter(2, time.Hour)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestZapLoggerRequestID(t *testing.T) {
	r := gin.New()
	r.Use(ZapLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
