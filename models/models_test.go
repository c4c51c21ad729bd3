package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		email string
		want  Role
	}{
		{"ADMIN@x.com", RoleAdmin},
		{"store.Admin@stitchlink.com", RoleAdmin},
		{"badminton@club.org", RoleAdmin},
		{OwnerEmail, RoleAdmin},
		{"VARSHITHASOMASHEKAR22@GMAIL.COM", RoleAdmin},
		{"person@x.com", RoleCustomer},
		{" varshithasomashekar22@gmail.com", RoleCustomer},
		{"", RoleCustomer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRole(tt.email), tt.email)
	}
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "priya", DisplayNameFromEmail("priya@example.com"))
	assert.Equal(t, "no-at-sign", DisplayNameFromEmail("no-at-sign"))
	assert.Equal(t, "", DisplayNameFromEmail(""))
}

func TestNextStatus_FollowsChain(t *testing.T) {
	got := []OrderStatus{OrderStatusPending}
	for {
		next, ok := NextStatus(got[len(got)-1])
		if !ok {
			break
		}
		got = append(got, next)
	}
	assert.Equal(t, StatusFlow, got)

	_, ok := NextStatus(OrderStatusDelivered)
	assert.False(t, ok)
	_, ok = NextStatus("CANCELLED")
	assert.False(t, ok)
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("quality_check")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusQualityCheck, s)

	s, err = ParseOrderStatus(" Shipped ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, s)

	_, err = ParseOrderStatus("returned")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestNewCartItem_Snapshot(t *testing.T) {
	d := Design{ID: "d1", Title: "Kashmiri Aari Floral", Price: decimal.NewFromInt(2500), Tags: []string{"floral"}}

	item := NewCartItem(d, "#FFFFFF", 2)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "d1", item.DesignID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.PriceAtPurchase.Equal(decimal.NewFromInt(2500)))
	assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(5000)))

	d.Tags[0] = "changed"
	assert.Equal(t, "floral", item.Design.Tags[0])

	other := NewCartItem(d, "#FFFFFF", 2)
	assert.NotEqual(t, item.ID, other.ID)
}

func TestCartTotal(t *testing.T) {
	assert.True(t, CartTotal(nil).IsZero())

	items := []CartItem{
		NewCartItem(Design{ID: "a", Price: decimal.RequireFromString("1800.00")}, "#FFD700", 2),
		NewCartItem(Design{ID: "b", Price: decimal.RequireFromString("950.50")}, "#000000", 1),
	}
	assert.Equal(t, "4550.5", CartTotal(items).String())
}
