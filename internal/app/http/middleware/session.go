package middleware

import (
	"net/http"

	"academy-cms/internal/api/auth"

	"github.com/gin-gonic/gin"
)

// RequireAdmin aborts with 401 unless the request carries the admin session
// cookie. The check is presence-only; see auth.CreateSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.CheckSession(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
