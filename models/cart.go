package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a line awaiting checkout. Design is a snapshot taken when the
// item was added; PriceAtPurchase never follows later catalog changes.
type CartItem struct {
	ID     string `json:"id"` // ephemeral, cart-local
	Design Design `json:"design"`
	OrderItem
}

// NewCartItem snapshots design into a fresh cart line.
func NewCartItem(design Design, fabricColor string, quantity int) CartItem {
	return CartItem{
		ID:     "cart-" + uuid.NewString(),
		Design: design.Clone(),
		OrderItem: OrderItem{
			DesignID:        design.ID,
			FabricColor:     fabricColor,
			Quantity:        quantity,
			PriceAtPurchase: design.Price,
		},
	}
}

// CartTotal sums price × quantity over items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
