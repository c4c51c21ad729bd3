package store

import (
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/shopspring/decimal"
)

const recentOrderCount = 5

type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

// DashboardStats backs the admin overview page.
type DashboardStats struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalOrders        int             `json:"totalOrders"`
	PendingOrders      int             `json:"pendingOrders"` // anything not yet DELIVERED
	AvgOrderValue      decimal.Decimal `json:"avgOrderValue"`
	StatusDistribution []StatusCount   `json:"statusDistribution"`
	RecentOrders       []models.Order  `json:"recentOrders"`
}

func (s *Store) DashboardStats() DashboardStats {
	orders := s.Orders()

	stats := DashboardStats{
		TotalRevenue:       decimal.Zero,
		AvgOrderValue:      decimal.Zero,
		TotalOrders:        len(orders),
		StatusDistribution: []StatusCount{},
	}

	counts := map[models.OrderStatus]int{}
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		if o.Status != models.OrderStatusDelivered {
			stats.PendingOrders++
		}
		counts[o.Status]++
	}
	if len(orders) > 0 {
		stats.AvgOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	for _, status := range models.StatusFlow {
		if n := counts[status]; n > 0 {
			stats.StatusDistribution = append(stats.StatusDistribution, StatusCount{Status: status, Count: n})
		}
	}

	stats.RecentOrders = s.RecentOrders(recentOrderCount)
	return stats
}
