package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	seed, err := store.LoadSeed("")
	require.NoError(t, err)
	s := store.New()
	require.NoError(t, s.Load(context.Background(), seed, 0))
	return s
}

func newRouter(s *store.Store) *gin.Engine {
	r := gin.New()
	r.GET("/user/cart", GetUserCart(s))
	r.POST("/user/cart", AddCartItem(s))
	r.DELETE("/user/cart", ClearUserCart(s))
	r.DELETE("/user/cart/:item_id", DeleteCartItem(s))
	r.GET("/user/cart/quote", GetCartQuote(s))
	r.POST("/user/checkout", Checkout(s))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addItem(t *testing.T, r http.Handler, designID string, qty int) models.CartItem {
	t.Helper()
	body := `{"design_id":"` + designID + `","fabric_color":"#FFFFFF","quantity":` + jsonInt(qty) + `}`
	w := doJSON(r, http.MethodPost, "/user/cart", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestAddCartItem(t *testing.T) {
	s := seededStore(t)
	r := newRouter(s)

	first := addItem(t, r, "d1", 2)
	second := addItem(t, r, "d1", 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "2500", first.PriceAtPurchase.String())

	w := doJSON(r, http.MethodGet, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "10000", s.CartTotal().String())
}

func TestAddCartItem_Validation(t *testing.T) {
	s := seededStore(t)
	r := newRouter(s)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"unknown design", `{"design_id":"nope","fabric_color":"#000000","quantity":1}`, http.StatusBadRequest},
		{"zero quantity", `{"design_id":"d1","fabric_color":"#000000","quantity":0}`, http.StatusBadRequest},
		{"no colour", `{"design_id":"d1","quantity":1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, doJSON(r, http.MethodPost, "/user/cart", tt.body).Code)
		})
	}
	assert.Empty(t, s.Cart())
}

func TestDeleteCartItem(t *testing.T) {
	s := seededStore(t)
	r := newRouter(s)

	keep := addItem(t, r, "d2", 1)
	drop := addItem(t, r, "d3", 1)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/user/cart/"+drop.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/user/cart/"+drop.ID, "").Code)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, keep.ID, cart[0].ID)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/user/cart", "").Code)
	assert.Empty(t, s.Cart())
}

func TestGetCartQuote(t *testing.T) {
	s := seededStore(t)
	r := newRouter(s)
	addItem(t, r, "d7", 1) // 950

	w := doJSON(r, http.MethodGet, "/user/cart/quote", "")
	require.Equal(t, http.StatusOK, w.Code)

	var q store.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, "950", q.Subtotal.String())
	assert.Equal(t, "47.5", q.Tax.String())
	assert.Equal(t, "150", q.Shipping.String())
	assert.Equal(t, "1147.5", q.Total.String())
}

func TestCheckout(t *testing.T) {
	s := seededStore(t)
	r := newRouter(s)

	_, err := s.Login("priya@example.com", "pw")
	require.NoError(t, err)
	addItem(t, r, "d1", 2)

	w := doJSON(r, http.MethodPost, "/user/checkout", `{"method":"upi"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "5000", resp.Order.Total.String())
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
	assert.Empty(t, s.Cart())
	assert.Len(t, s.Notifications(), 1)

	// Nothing left to pay for.
	w = doJSON(r, http.MethodPost, "/user/checkout", `{"method":"card"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, s.Orders(), 1)
}

func TestCheckout_Rejects(t *testing.T) {
	s := seededStore(t)
	r := newRouter(s)
	addItem(t, r, "d1", 1)

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/user/checkout", `{"method":"bitcoin"}`).Code)
	// Cart but nobody signed in.
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodPost, "/user/checkout", `{"method":"cod"}`).Code)

	assert.Empty(t, s.Orders())
	assert.Len(t, s.Cart(), 1)
}
