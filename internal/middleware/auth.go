package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth пропускает только залогиненных. Отказ отдаётся телом
// {status:403} с HTTP 200, как и остальные бизнес-ошибки прокси.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status":  http.StatusForbidden,
				"message": "Unauthorized: User is not logged in",
			})
			return
		}
		c.Next()
	}
}
