package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Fulfilment chain, in order. DELIVERED is terminal.
	OrderStatusPending        OrderStatus = "PENDING"         // Order placed, fabric not yet in
	OrderStatusFabricReceived OrderStatus = "FABRIC_RECEIVED" // Customer fabric arrived at the studio
	OrderStatusProcessing     OrderStatus = "PROCESSING"      // On the embroidery machine
	OrderStatusQualityCheck   OrderStatus = "QUALITY_CHECK"   // Finished, being inspected
	OrderStatusShipped        OrderStatus = "SHIPPED"         // Out for delivery
	OrderStatusDelivered      OrderStatus = "DELIVERED"       // Customer received the piece
)

// StatusFlow is the fulfilment chain an order is expected to move through.
var StatusFlow = []OrderStatus{
	OrderStatusPending,
	OrderStatusFabricReceived,
	OrderStatusProcessing,
	OrderStatusQualityCheck,
	OrderStatusShipped,
	OrderStatusDelivered,
}

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a case-insensitive string onto a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	upper := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, status := range StatusFlow {
		if status == upper {
			return status, nil
		}
	}
	return "", ErrInvalidOrderStatus
}

// NextStatus returns the status after s in StatusFlow. It reports false for
// DELIVERED and for values outside the chain.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	for i, status := range StatusFlow {
		if status == s {
			if i == len(StatusFlow)-1 {
				return "", false
			}
			return StatusFlow[i+1], true
		}
	}
	return "", false
}

type OrderItem struct {
	DesignID        string          `json:"designId"`
	FabricColor     string          `json:"fabricColor"` // hex, e.g. #FFFFFF
	Quantity        int             `json:"quantity"`
	CustomNotes     string          `json:"customNotes,omitempty"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is created at checkout. Status is the only field that changes later.
type Order struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Date         string          `json:"date"` // RFC 3339
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
