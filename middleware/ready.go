package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// RequireReady answers 503 until the catalog has finished loading.
func RequireReady(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Ready() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog is still loading"})
			return
		}
		c.Next()
	}
}
