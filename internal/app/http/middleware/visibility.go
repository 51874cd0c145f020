package middleware

import (
	"net/http"

	"doris-art/internal/domain/site"

	"github.com/gin-gonic/gin"
)

// PageVisible answers 404 when the admin has hidden page. The visibility map
// is read per request so a settings change applies immediately.
func PageVisible(page string, visibility func() map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !site.Visible(visibility(), page) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.Next()
	}
}
