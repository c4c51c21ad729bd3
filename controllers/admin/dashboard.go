package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// GetDashboard returns revenue, order counts and the latest orders.
func GetDashboard(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.DashboardStats())
	}
}
