package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the form UI to be served from a different origin
func CORS() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		ctx.Header("Access-Control-Expose-Headers", "Content-Disposition, X-Card-ID")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
