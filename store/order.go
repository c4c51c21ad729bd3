package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/junaidrashid-git/stitchlink-api/models"
)

// PlaceOrder checks out the cart for the current user. The new order goes to
// the front of the order list, a NEW_ORDER notification goes to the front of
// the notification list, and the cart is emptied, all under one lock.
//
// Without a user or with an empty cart nothing changes and ErrNotLoggedIn or
// ErrEmptyCart is returned.
func (s *Store) PlaceOrder() (models.Order, error) {
	s.mu.Lock()
	if s.currentUser == nil {
		s.mu.Unlock()
		return models.Order{}, ErrNotLoggedIn
	}
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrEmptyCart
	}

	now := s.now()
	total := models.CartTotal(s.cart)

	items := make([]models.OrderItem, 0, len(s.cart))
	for _, item := range s.cart {
		items = append(items, models.OrderItem{
			DesignID:        item.DesignID,
			FabricColor:     item.FabricColor,
			Quantity:        item.Quantity,
			CustomNotes:     item.CustomNotes,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	order := models.Order{
		ID:           s.newID("ORD"),
		CustomerID:   s.currentUser.ID,
		CustomerName: s.currentUser.Name,
		Date:         now.UTC().Format(time.RFC3339Nano),
		Status:       models.OrderStatusPending,
		Items:        items,
		Total:        total,
	}

	notif := models.Notification{
		ID:        s.newID("NOTIF"),
		Type:      models.NotificationNewOrder,
		OrderID:   order.ID,
		Message:   fmt.Sprintf("New order #%s from %s - ₹%s", shortRef(order.ID), order.CustomerName, total.String()),
		CreatedAt: now,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.notifications = append([]models.Notification{notif}, s.notifications...)
	s.cart = nil
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeOrderPlaced, OrderID: order.ID, NotificationID: notif.ID, At: now})
	return order.Clone(), nil
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// UpdateOrderStatus overwrites the status of an order. Any status is
// accepted from any status; callers that want forward-only movement use
// models.NextStatus themselves.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	found := false
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrOrderNotFound
	}
	s.emit(Change{Kind: ChangeOrderStatus, OrderID: orderID, Status: status})
	return nil
}

// Orders returns every order, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

func (s *Store) Order(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o.Clone(), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// OrdersFor returns the orders placed by one customer, most recent first.
func (s *Store) OrdersFor(customerID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o.Clone())
		}
	}
	return out
}

// RecentOrders returns up to n orders sorted by date, newest first.
func (s *Store) RecentOrders(n int) []models.Order {
	orders := s.Orders()
	sort.SliceStable(orders, func(i, j int) bool {
		return orderTime(orders[i]).After(orderTime(orders[j]))
	})
	if n >= 0 && len(orders) > n {
		orders = orders[:n]
	}
	return orders
}

func orderTime(o models.Order) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, o.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
