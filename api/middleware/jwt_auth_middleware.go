package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	"github.com/manhva-oppa/oppa-blog/internal/tokenutil"
	"go.uber.org/zap"
)

const UserIDKey = "x-user-id"

// JwtAuthMiddleware requires "Authorization: Bearer <token>" and stores the
// token's user id under UserIDKey.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		authToken, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(authToken) == "" {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			return
		}

		userID, err := tokenutil.ExtractIDFromToken(strings.TrimSpace(authToken), secret)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AdminOnly must run after JwtAuthMiddleware. Tokens of users no longer in
// the admins collection are refused.
func AdminOnly(lu domain_admin.LoginUsecase, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)

		ok, err := lu.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			logger.Error("admin lookup failed", zap.String("user_id", userID), zap.Error(err))
			controller.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "admin lookup failed")
			return
		}
		if !ok {
			controller.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Unauthorized: Admin access required")
			return
		}
		c.Next()
	}
}
