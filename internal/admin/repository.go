// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/angelamos/gearstore/internal/core"
)

// lowStockThreshold marks catalog rows worth restocking.
const lowStockThreshold = 10

type StoreStats struct {
	Products          int            `json:"products"`
	LowStockProducts  int            `json:"low_stock_products"`
	Users             int            `json:"users"`
	Orders            int            `json:"orders"`
	OrdersByStatus    map[string]int `json:"orders_by_status"`
	UndeliveredOrders int            `json:"undelivered_orders"`
}

type StatsRepository interface {
	StoreStats(ctx context.Context) (*StoreStats, error)
}

type statsRepository struct {
	db core.DBTX
}

func NewStatsRepository(db core.DBTX) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) StoreStats(ctx context.Context) (*StoreStats, error) {
	stats := &StoreStats{
		OrdersByStatus: map[string]int{},
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM products`, &stats.Products},
		{
			fmt.Sprintf(
				`SELECT COUNT(*) FROM products WHERE stock < %d`,
				lowStockThreshold,
			),
			&stats.LowStockProducts,
		},
		{`SELECT COUNT(*) FROM users`, &stats.Users},
		{`SELECT COUNT(*) FROM orders`, &stats.Orders},
		{
			`SELECT COUNT(*) FROM orders
			 WHERE status NOT IN ('delivered', 'cancelled')`,
			&stats.UndeliveredOrders,
		},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("store stats: %w", err)
		}
	}

	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}

	query := `
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("store stats by status: %w", err)
	}

	for _, row := range rows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	return stats, nil
}
