package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

func GetNotifications(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"notifications": s.Notifications(),
			"unread":        s.UnreadCount(),
		})
	}
}

// MarkNotificationRead is idempotent for known ids.
func MarkNotificationRead(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.MarkNotificationAsRead(c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotificationNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}
