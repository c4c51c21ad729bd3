package store

import (
	"testing"

	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(id string, price int64, qty int) models.CartItem {
	return models.CartItem{
		ID:     id,
		Design: models.Design{ID: "d-" + id, Price: decimal.NewFromInt(price)},
		OrderItem: models.OrderItem{
			DesignID:        "d-" + id,
			FabricColor:     "#FFFFFF",
			Quantity:        qty,
			PriceAtPurchase: decimal.NewFromInt(price),
		},
	}
}

func TestCartTotal_SumOfLines(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(cartLine("a", 2500, 2))
	s.AddToCart(cartLine("b", 950, 3))
	s.AddToCart(cartLine("c", 1200, 1))

	assert.True(t, s.CartTotal().Equal(decimal.NewFromInt(5000+2850+1200)), s.CartTotal().String())

	require.NoError(t, s.RemoveFromCart("b"))
	assert.True(t, s.CartTotal().Equal(decimal.NewFromInt(6200)))

	ids := []string{}
	for _, item := range s.Cart() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestCartTotal_FractionalPricesAreExact(t *testing.T) {
	s := newTestStore(t)
	item := cartLine("a", 0, 3)
	item.PriceAtPurchase = decimal.RequireFromString("0.10")
	s.AddToCart(item)
	item.ID = "b"
	item.PriceAtPurchase = decimal.RequireFromString("0.20")
	s.AddToCart(item)

	assert.Equal(t, "0.9", s.CartTotal().String())
}

func TestAddToCart_SameDesignAndColourStaysSeparate(t *testing.T) {
	s := newTestStore(t)
	d1 := mustDesign(t, s, "d1")

	s.AddToCart(models.NewCartItem(d1, "#FFFFFF", 1))
	s.AddToCart(models.NewCartItem(d1, "#FFFFFF", 1))

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
	assert.NotEqual(t, cart[0].ID, cart[1].ID)
}

func TestAddToCart_PriceIsSnapshot(t *testing.T) {
	s := newTestStore(t)
	d1 := mustDesign(t, s, "d1")
	s.AddToCart(models.NewCartItem(d1, "#FFFFFF", 1))

	repriced := d1
	repriced.Price = decimal.NewFromInt(9999)
	s.AddDesign(repriced)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.True(t, cart[0].PriceAtPurchase.Equal(decimal.NewFromInt(2500)))
	assert.True(t, cart[0].Design.Price.Equal(decimal.NewFromInt(2500)))
}

func TestRemoveFromCart_UnknownIsNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(cartLine("a", 100, 1))

	assert.ErrorIs(t, s.RemoveFromCart("zzz"), ErrCartItemNotFound)
	assert.Len(t, s.Cart(), 1)
}

func TestClearCart(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(cartLine("a", 100, 1))
	s.AddToCart(cartLine("b", 100, 1))

	s.ClearCart()
	assert.Empty(t, s.Cart())
	assert.True(t, s.CartTotal().IsZero())

	s.ClearCart()
	assert.Empty(t, s.Cart())
}

func TestQuoteCart(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.CartItem
		subtotal string
		tax      string
		shipping string
		total    string
	}{
		{"empty", nil, "0", "0", "0", "0"},
		{"below threshold pays shipping", []models.CartItem{cartLine("a", 1500, 1)}, "1500", "75", "150", "1725"},
		{"exactly threshold pays shipping", []models.CartItem{cartLine("a", 1000, 2)}, "2000", "100", "150", "2250"},
		{"above threshold ships free", []models.CartItem{cartLine("a", 2500, 2)}, "5000", "250", "0", "5250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteCart(tt.items)
			assert.True(t, q.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)), "subtotal %s", q.Subtotal)
			assert.True(t, q.Tax.Equal(decimal.RequireFromString(tt.tax)), "tax %s", q.Tax)
			assert.True(t, q.Shipping.Equal(decimal.RequireFromString(tt.shipping)), "shipping %s", q.Shipping)
			assert.True(t, q.Total.Equal(decimal.RequireFromString(tt.total)), "total %s", q.Total)
		})
	}
}
