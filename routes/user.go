package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/stitchlink-api/controllers/cart"
	orderControllers "github.com/junaidrashid-git/stitchlink-api/controllers/order"
	reviewControllers "github.com/junaidrashid-git/stitchlink-api/controllers/review"
	"github.com/junaidrashid-git/stitchlink-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires a CUSTOMER session.
func SetupUserRoutes(r *gin.RouterGroup, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Store, d.JWTSecret), middleware.RequireCustomer)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(d.Store))                // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(d.Store))               // POST /user/cart
			cartGroup.DELETE("", cartControllers.ClearUserCart(d.Store))           // DELETE /user/cart
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(d.Store)) // DELETE /user/cart/:item_id
			cartGroup.GET("/quote", cartControllers.GetCartQuote(d.Store))         // GET /user/cart/quote
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", cartControllers.Checkout(d.Store))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(d.Store))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.CreateReview(d.Store))
	}
}
