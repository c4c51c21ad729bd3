package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

type CartItemInput struct {
	DesignID    string `json:"design_id" binding:"required"`
	FabricColor string `json:"fabric_color" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	CustomNotes string `json:"custom_notes"`
}

// GET /user/cart
func GetUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items": s.Cart(),
			"total": s.CartTotal(),
		})
	}
}

// POST /user/cart
// Every add is a new line, even for a design and colour already in the cart.
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		design, err := s.Design(input.DesignID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Design does not exist"})
			return
		}

		item := models.NewCartItem(design, input.FabricColor, input.Quantity)
		item.CustomNotes = input.CustomNotes
		s.AddToCart(item)
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.RemoveFromCart(c.Param("item_id")); err != nil {
			if errors.Is(err, store.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /user/cart
func ClearUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/quote
func GetCartQuote(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Quote())
	}
}
