package reviewControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

type ReviewInput struct {
	DesignID string `json:"design_id"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
}

// GetReviews lists reviews, newest first. Optional ?design_id= narrows to
// one design.
func GetReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if designID := c.Query("design_id"); designID != "" {
			reviews = s.ReviewsFor(designID)
		} else {
			reviews = s.Reviews()
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// CreateReview posts a review as the signed-in user. A review without a
// design_id is a general shop review.
func CreateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, ok := s.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": store.ErrNotLoggedIn.Error()})
			return
		}

		now := time.Now()
		review := models.Review{
			ID:       "rev-" + uuid.NewString(),
			DesignID: strings.TrimSpace(input.DesignID),
			UserID:   user.ID,
			UserName: user.Name,
			Rating:   input.Rating,
			Comment:  strings.TrimSpace(input.Comment),
			Date:     now.Format(time.DateOnly),
		}
		s.AddReview(review)
		c.JSON(http.StatusCreated, review)
	}
}
