package designcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// GetDesigns lists the catalog. Query: ?search=&category=
// category defaults to ALL.
func GetDesigns(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		designs := s.FilterDesigns(c.Query("search"), c.DefaultQuery("category", store.CategoryAll))
		c.JSON(http.StatusOK, gin.H{
			"designs": designs,
			"count":   len(designs),
		})
	}
}

// GetInventory is the admin listing; search matches title or category.
func GetInventory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		designs := s.SearchInventory(c.Query("search"))
		c.JSON(http.StatusOK, gin.H{
			"designs": designs,
			"count":   len(designs),
		})
	}
}

func GetCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := append([]string{store.CategoryAll}, s.Categories()...)
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
