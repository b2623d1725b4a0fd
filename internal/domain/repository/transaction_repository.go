package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"github.com/stockpro/stockpro-api/pkg/pagination"
)

// TransactionRepository reads the append-only stock movement ledger.
// Rows are written exclusively by the StockLedger; there is deliberately no
// Update or Delete on this interface.
type TransactionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// GetByCheckoutID returns the lines one checkout wrote, in insertion order.
	GetByCheckoutID(ctx context.Context, checkoutID uuid.UUID) ([]entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// ListAll returns every transaction matching the filters without
	// pagination, for report export.
	ListAll(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, error)
	Recent(ctx context.Context, limit int) ([]entity.Transaction, error)
	Summary(ctx context.Context, params *TransactionFilterParams) (*TransactionSummary, error)
	DailyStockOutTotals(ctx context.Context, days int) ([]DailyTotal, error)
}

// TransactionFilterParams contains filtering parameters for ledger queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches item name or cashier email
	Type       *enum.TransactionType
	ItemID     *uuid.UUID
	CashierID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionSummary aggregates ledger counts and values for reporting cards
type TransactionSummary struct {
	Total         int64 `json:"total"`
	StockInCount  int64 `json:"stock_in_count"`
	StockOutCount int64 `json:"stock_out_count"`
	StockOutValue int64 `json:"-"` // cents, sum of Stock Out line totals
}

// DailyTotal is one day's stock-out value for dashboard charts
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Value int64     `json:"-"` // cents
}
