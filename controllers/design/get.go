package designcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// GetDesignByID returns one design with its reviews and average rating.
// URL param: /designs/:id
func GetDesignByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		design, err := s.Design(id)
		if err != nil {
			if errors.Is(err, store.ErrDesignNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Design not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve design"})
			}
			return
		}

		avg, count := s.AverageRating(id)
		c.JSON(http.StatusOK, gin.H{
			"design":         design,
			"reviews":        s.ReviewsFor(id),
			"average_rating": avg,
			"review_count":   count,
		})
	}
}
