package services

import (
	"context"
	"treeuniformes_server/database"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// DashboardService aggregates the counters shown on the admin dashboard
type DashboardService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewDashboardService(logger *gecho.Logger, db *database.DB) *DashboardService {
	return &DashboardService{
		logger: logger,
		db:     db,
	}
}

type statusCount struct {
	Status string `bun:"status" json:"status"`
	Count  int    `bun:"count" json:"count"`
}

type DashboardStats struct {
	TotalOrders    int            `json:"total_orders"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
	RevenueCents   uint64         `json:"revenue_cents"` // delivered and shipped orders
	PendingQuotes  int            `json:"pending_quotes"`
	UnreadMessages int            `json:"unread_messages"`
	ActiveProducts int            `json:"active_products"`
	LowStockCount  int            `json:"low_stock_count"`
	RecentOrders   []tables.Order `json:"recent_orders"`
}

// GetStats collects the dashboard counters in a handful of queries
func (ds *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: map[string]int{},
	}

	statusCounts, err := database.RawQuery[statusCount](ds.db, ctx,
		`SELECT status, COUNT(*) AS count FROM orders WHERE deleted_at IS NULL GROUP BY status`)
	if err != nil {
		ds.logger.Error("Failed to count orders by status", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}
	for _, sc := range statusCounts {
		stats.OrdersByStatus[sc.Status] = sc.Count
		stats.TotalOrders += sc.Count
	}

	revenueRows, err := database.RawQuery[uint64](ds.db, ctx,
		`SELECT COALESCE(SUM(total_cents), 0) FROM orders
		 WHERE status IN (?, ?) AND deleted_at IS NULL`,
		tables.OrderStatusShipped, tables.OrderStatusDelivered)
	if err != nil {
		ds.logger.Error("Failed to sum revenue", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}
	if len(revenueRows) > 0 {
		stats.RevenueCents = revenueRows[0]
	}

	pendingQuotes, err := database.Query[tables.Quote](ds.db).
		Where("status", tables.QuoteStatusSent).
		WhereNull("deleted_at").
		Count(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.PendingQuotes = pendingQuotes

	unread, err := database.Query[tables.ContactMessage](ds.db).
		Where("is_read", false).
		Count(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.UnreadMessages = unread

	activeProducts, err := database.Query[tables.Product](ds.db).
		Where("is_active", true).
		Count(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.ActiveProducts = activeProducts

	lowStock, err := database.Query[tables.Inventory](ds.db).
		WhereRaw("quantity - reserved_quantity < ?", tables.LowStockThreshold).
		Count(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.LowStockCount = lowStock

	recent, err := database.Query[tables.Order](ds.db).
		WhereNull("deleted_at").
		OrderBy("created_at", database.DESC).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.RecentOrders = recent

	return stats, nil
}
