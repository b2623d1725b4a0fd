package service

import (
	"context"
	"time"

	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
)

// DashboardService provides the admin dashboard statistics
type DashboardService struct {
	itemRepo repository.ItemRepository
	txnRepo  repository.TransactionRepository
	userRepo repository.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		itemRepo: itemRepo,
		txnRepo:  txnRepo,
		userRepo: userRepo,
	}
}

// DashboardStats represents the dashboard overview
type DashboardStats struct {
	TotalItems         int64                `json:"total_items"`
	TotalUsers         int64                `json:"total_users"`
	TotalTransactions  int64                `json:"total_transactions"`
	StockInCount       int64                `json:"stock_in_count"`
	StockOutCount      int64                `json:"stock_out_count"`
	StockOutValue      float64              `json:"stock_out_value"`
	TodaySales         float64              `json:"today_sales"`
	LowStockCount      int64                `json:"low_stock_count"`
	LowStockItems      []entity.Item        `json:"low_stock_items"`
	DailySalesData     []DailySalesPoint    `json:"daily_sales_data"`
	RecentTransactions []entity.Transaction `json:"recent_transactions"`
}

// DailySalesPoint represents one day's stock-out value
type DailySalesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// GetDashboardStats returns the dashboard overview
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	itemCount, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalItems = itemCount

	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = userCount

	summary, err := s.txnRepo.Summary(ctx, &repository.TransactionFilterParams{})
	if err != nil {
		return nil, err
	}
	stats.TotalTransactions = summary.Total
	stats.StockInCount = summary.StockInCount
	stats.StockOutCount = summary.StockOutCount
	stats.StockOutValue = float64(summary.StockOutValue) / 100

	// Today's sales: stock-out value since local midnight
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	stockOut := enum.TransactionTypeStockOut
	todaySummary, err := s.txnRepo.Summary(ctx, &repository.TransactionFilterParams{
		Type:      &stockOut,
		StartDate: &midnight,
	})
	if err != nil {
		return nil, err
	}
	stats.TodaySales = float64(todaySummary.StockOutValue) / 100

	lowStockItems, err := s.itemRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockItems = lowStockItems
	stats.LowStockCount = int64(len(lowStockItems))

	dailyTotals, err := s.txnRepo.DailyStockOutTotals(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySalesData = make([]DailySalesPoint, 0, len(dailyTotals))
	for _, d := range dailyTotals {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:  d.Date.Format("2006-01-02"),
			Value: float64(d.Value) / 100,
		})
	}

	recent, err := s.txnRepo.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentTransactions = recent

	return stats, nil
}
