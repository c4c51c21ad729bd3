package adminController

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newRouter(s *store.Store) *gin.Engine {
	r := gin.New()
	r.GET("/admin/dashboard", GetDashboard(s))
	r.GET("/admin/notifications", GetNotifications(s))
	r.PUT("/admin/notifications/:id/read", MarkNotificationRead(s))
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func storeWithOrder(t *testing.T) *store.Store {
	t.Helper()
	seed, err := store.LoadSeed("")
	require.NoError(t, err)
	s := store.New()
	require.NoError(t, s.Load(context.Background(), seed, 0))

	_, err = s.Login("priya@example.com", "pw")
	require.NoError(t, err)
	for _, id := range []string{"d1", "d3"} {
		d, err := s.Design(id)
		require.NoError(t, err)
		s.AddToCart(models.NewCartItem(d, "#FFFFFF", 1))
	}
	_, err = s.PlaceOrder()
	require.NoError(t, err)
	return s
}

func TestGetDashboard(t *testing.T) {
	s := storeWithOrder(t)
	w := serve(newRouter(s), http.MethodGet, "/admin/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, "8000", stats.TotalRevenue.String())
	assert.Equal(t, "8000", stats.AvgOrderValue.String())
	assert.Equal(t, []store.StatusCount{{Status: models.OrderStatusPending, Count: 1}}, stats.StatusDistribution)
	assert.Len(t, stats.RecentOrders, 1)
}

func TestNotifications(t *testing.T) {
	s := storeWithOrder(t)
	r := newRouter(s)

	w := serve(r, http.MethodGet, "/admin/notifications")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
		Unread        int                   `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, 1, resp.Unread)
	assert.Equal(t, models.NotificationNewOrder, resp.Notifications[0].Type)

	id := resp.Notifications[0].ID
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPut, "/admin/notifications/"+id+"/read").Code)
	// Marking twice is fine.
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPut, "/admin/notifications/"+id+"/read").Code)
	assert.Equal(t, 0, s.UnreadCount())

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPut, "/admin/notifications/NOTIF-missing/read").Code)
}
