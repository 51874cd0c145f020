package middleware

import (
	"net/http"

	"doris-art/internal/api/auth"

	"github.com/gin-gonic/gin"
)

// AdminSession rejects requests without a valid admin_session cookie.
func AdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.VerifySession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set("admin", claims.Admin)
		c.Next()
	}
}
