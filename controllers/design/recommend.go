package designcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/recommend"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

type RecommendationRequest struct {
	Query string `json:"query" binding:"required"`
}

// GetRecommendations returns the matched ids and the designs they refer to.
// Ids no longer in the catalog are dropped from "designs" only.
func GetRecommendations(s *store.Store, rec recommend.Recommender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
			return
		}

		ids := rec.Recommend(c.Request.Context(), req.Query, s.Designs())

		designs := []models.Design{}
		for _, id := range ids {
			if d, err := s.Design(id); err == nil {
				designs = append(designs, d)
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"recommendedIds": ids,
			"designs":        designs,
		})
	}
}
