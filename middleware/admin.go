package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
)

// RequireAdmin must run after ValidateToken. It checks the role the session
// was granted, not what the email looks like: signups are always CUSTOMER.
func RequireAdmin(c *gin.Context) {
	requireRole(c, models.RoleAdmin, "Admin access required")
}

// RequireCustomer keeps admin sessions out of the shopping routes.
func RequireCustomer(c *gin.Context) {
	requireRole(c, models.RoleCustomer, "Customer access required")
}

func requireRole(c *gin.Context, role models.Role, message string) {
	user, ok := SessionUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if user.Role != role {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
		return
	}
	c.Next()
}
