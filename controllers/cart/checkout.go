package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod" // cash on delivery
)

type CheckoutRequest struct {
	Method PaymentMethod `json:"method" binding:"required,oneof=card upi cod"`
}

// POST /user/checkout
// Payment is simulated and always succeeds; the cart then becomes an order.
func Checkout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "method must be one of card, upi, cod"})
			return
		}

		quote := s.Quote()
		order, err := s.PlaceOrder()
		switch {
		case errors.Is(err, store.ErrNotLoggedIn):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		log.Printf("✅ Order %s placed by %s via %s", order.ID, order.CustomerName, req.Method)
		c.JSON(http.StatusOK, gin.H{
			"message":        "Order placed successfully",
			"payment_method": req.Method,
			"order":          order,
			"quote":          quote,
		})
	}
}
