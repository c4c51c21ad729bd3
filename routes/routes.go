package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/stitchlink-api/controllers/order"
	"github.com/junaidrashid-git/stitchlink-api/middleware"
	"github.com/junaidrashid-git/stitchlink-api/recommend"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// Deps is everything the route groups need.
type Deps struct {
	Store       *store.Store
	Recommender recommend.Recommender
	Hub         *orderControllers.Hub
	JWTSecret   string
}

// SetupRoutes is the single entry-point that wires up the Auth, Catalog,
// User and Admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Readiness probe, answered even while the catalog loads
	r.GET("/healthz", func(c *gin.Context) {
		status := http.StatusOK
		if !d.Store.Ready() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ready": d.Store.Ready()})
	})

	api := r.Group("/")
	api.Use(middleware.RequireReady(d.Store))

	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(api, d)

	// 2️⃣ Public catalog
	SetupCatalogRoutes(api, d)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(api, d)

	// 4️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(api, d)
}
