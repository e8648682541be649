package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse aborts the chain with {"code", "message"}.
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// SuccessResponse wraps data under key: {"data": {key: data}, "count": n}.
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"data":  gin.H{key: data},
		"count": count,
	})
}
