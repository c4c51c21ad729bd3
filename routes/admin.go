package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/stitchlink-api/controllers/admin"
	designcontroller "github.com/junaidrashid-git/stitchlink-api/controllers/design"
	orderControllers "github.com/junaidrashid-git/stitchlink-api/controllers/order"
	"github.com/junaidrashid-git/stitchlink-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires a JWT whose
// email classifies as ADMIN.
func SetupAdminRoutes(r *gin.RouterGroup, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(d.Store, d.JWTSecret), middleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", adminController.GetDashboard(d.Store))

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.Store))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(d.Store))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(d.Store))
			orderAdmin.POST("/:id/advance", orderControllers.AdvanceOrderStatusHandler(d.Store))
		}

		// ─────────── Design Inventory ───────────
		designAdmin := adminGroup.Group("/designs")
		{
			designAdmin.GET("", designcontroller.GetInventory(d.Store))
			designAdmin.POST("", designcontroller.CreateDesign(d.Store))
			designAdmin.POST("/import-excel", designcontroller.ImportDesignsFromExcel(d.Store))
			designAdmin.GET("/export-excel", designcontroller.ExportDesignsToExcel(d.Store))
		}

		// ─────────── Notifications ───────────
		notifAdmin := adminGroup.Group("/notifications")
		{
			notifAdmin.GET("", adminController.GetNotifications(d.Store))
			notifAdmin.PUT("/:id/read", adminController.MarkNotificationRead(d.Store))
		}

		// websocket endpoint for real-time order updates
		if d.Hub != nil {
			adminGroup.GET("/ws", d.Hub.OrderWebSocketHandler)
		}
	}
}
