package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.RouterGroup, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.Store, d.JWTSecret))
		authGroup.POST("/signup", auth.SignupHandler(d.Store, d.JWTSecret))
		authGroup.POST("/logout", auth.LogoutHandler(d.Store))
		authGroup.GET("/me", auth.MeHandler(d.Store))
	}
}
