package routes

import (
	"github.com/gin-gonic/gin"
	designcontroller "github.com/junaidrashid-git/stitchlink-api/controllers/design"
	reviewControllers "github.com/junaidrashid-git/stitchlink-api/controllers/review"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.RouterGroup, d Deps) {
	r.GET("/designs", designcontroller.GetDesigns(d.Store))        // GET /designs?search=&category=
	r.GET("/designs/:id", designcontroller.GetDesignByID(d.Store)) // GET /designs/:id
	r.GET("/categories", designcontroller.GetCategories(d.Store))
	r.GET("/reviews", reviewControllers.GetReviews(d.Store)) // GET /reviews?design_id=
	r.POST("/recommendations", designcontroller.GetRecommendations(d.Store, d.Recommender))
}
