package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/middleware"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Handlers --------

// GetAllOrdersHandler lists every order, most recent first. Optional
// ?status= narrows to one status.
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()

		if raw := c.Query("status"); raw != "" {
			status, err := models.ParseOrderStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			filtered := []models.Order{}
			for _, o := range orders {
				if o.Status == status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GetUserOrdersHandler lists the signed-in customer's orders.
func GetUserOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		c.JSON(http.StatusOK, gin.H{"orders": s.OrdersFor(userID)})
	}
}

// UpdateOrderStatusHandler sets any known status, in any direction.
func UpdateOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		setStatus(c, s, orderID, status)
	}
}

// AdvanceOrderStatusHandler moves an order one step along models.StatusFlow.
func AdvanceOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		order, err := s.Order(orderID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		next, ok := models.NextStatus(order.Status)
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"error": "Order cannot move past " + string(order.Status)})
			return
		}

		setStatus(c, s, orderID, next)
	}
}

func setStatus(c *gin.Context, s *store.Store, orderID string, status models.OrderStatus) {
	if err := s.UpdateOrderStatus(orderID, status); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	order, err := s.Order(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	log.Printf("📦 Order %s is now %s", orderID, status)
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}
