package designcontroller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
	"github.com/shopspring/decimal"
)

const (
	DefaultDescription = "No description provided."
	DefaultCategory    = "Uncategorized"
	DefaultImage       = "https://images.unsplash.com/photo-1550920455-d36c2f37c532?q=80&w=1000"
)

// DesignInput binds from JSON or a form post.
type DesignInput struct {
	Title       string      `json:"title" form:"title" binding:"required"`
	Price       json.Number `json:"price" form:"price" binding:"required"` // number or numeric string
	Description string      `json:"description" form:"description"`
	Category    string      `json:"category" form:"category"`
	Image       string      `json:"image" form:"image"`
	Stitches    int         `json:"stitches" form:"stitches"`
	Tags        string      `json:"tags" form:"tags"` // comma separated
}

// CreateDesign adds a design to the front of the catalog.
func CreateDesign(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DesignInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and price are required"})
			return
		}

		design, err := input.toDesign(time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s.AddDesign(design)
		log.Printf("✅ Design added: %s (%s)", design.Title, design.ID)
		c.JSON(http.StatusCreated, design)
	}
}

func (in DesignInput) toDesign(now time.Time) (models.Design, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(string(in.Price)))
	if err != nil || price.IsNegative() {
		return models.Design{}, fmt.Errorf("invalid price %q", in.Price)
	}

	d := models.Design{
		ID:          fmt.Sprintf("d-%d", now.UnixMilli()),
		Title:       strings.TrimSpace(in.Title),
		Description: orDefault(in.Description, DefaultDescription),
		Price:       price,
		Category:    orDefault(in.Category, DefaultCategory),
		Image:       orDefault(in.Image, DefaultImage),
		Tags:        splitTags(in.Tags),
		Stitches:    in.Stitches,
	}
	if d.Title == "" {
		return models.Design{}, fmt.Errorf("title is required")
	}
	return d, nil
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
