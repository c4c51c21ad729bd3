package models

import "time"

type NotificationType string

const (
	NotificationNewOrder    NotificationType = "NEW_ORDER"
	NotificationOrderUpdate NotificationType = "ORDER_UPDATE"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	OrderID   string           `json:"orderId"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
