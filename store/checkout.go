package store

import (
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/shopspring/decimal"
)

var (
	gstRate           = decimal.RequireFromString("0.05")
	freeShippingAbove = decimal.NewFromInt(2000)
	shippingFee       = decimal.NewFromInt(150)
)

// Quote is the checkout summary shown before payment. The placed order's
// Total is the Subtotal; tax and shipping are display-only.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"` // 5% GST
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

func QuoteCart(items []models.CartItem) Quote {
	if len(items) == 0 {
		return Quote{Subtotal: decimal.Zero, Tax: decimal.Zero, Shipping: decimal.Zero, Total: decimal.Zero}
	}

	subtotal := models.CartTotal(items)
	tax := subtotal.Mul(gstRate)
	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingAbove) {
		shipping = decimal.Zero
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// Quote prices the current cart.
func (s *Store) Quote() Quote {
	return QuoteCart(s.Cart())
}
