package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/stitchlink-api/auth"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// Context keys set by ValidateToken.
const (
	ContextUserID = "user_id"
	ContextUser   = "user"
)

// ValidateToken accepts a token only while it belongs to the user currently
// signed in to the store; tokens from before a logout are rejected.
func ValidateToken(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		userID, _ := claims["user_id"].(string)

		current, ok := s.CurrentUser()
		if !ok || current.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			return
		}

		c.Set(ContextUserID, current.ID)
		c.Set(ContextUser, current)
		c.Next()
	}
}

// bearerToken reads the Authorization header. Websocket upgrades may pass
// ?token= instead since browsers cannot set headers on them.
func bearerToken(c *gin.Context) string {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if token == "" && websocket.IsWebSocketUpgrade(c.Request) {
		token = c.Query("token")
	}
	return token
}

// SessionUser returns the user stored by ValidateToken.
func SessionUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
