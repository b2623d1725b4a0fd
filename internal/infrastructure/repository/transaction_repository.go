package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	domainRepo "github.com/stockpro/stockpro-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) GetByCheckoutID(ctx context.Context, checkoutID uuid.UUID) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.db.WithContext(ctx).
		Where("checkout_id = ?", checkoutID).
		Order("created_at ASC, id ASC").
		Find(&txns).Error
	return txns, err
}

// applyFilters narrows a ledger query by the optional filter parameters.
func applyFilters(query *gorm.DB, params *domainRepo.TransactionFilterParams) *gorm.DB {
	if params.Search != "" {
		query = query.Where("item_name ILIKE ? OR cashier_email ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.ItemID != nil {
		query = query.Where("item_id = ?", *params.ItemID)
	}
	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}
	return query
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var txns []entity.Transaction
	var total int64

	query := applyFilters(r.db.WithContext(ctx).Model(&entity.Transaction{}), params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *transactionRepository) ListAll(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := applyFilters(r.db.WithContext(ctx).Model(&entity.Transaction{}), params).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) Recent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	var txns []entity.Transaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) Summary(ctx context.Context, params *domainRepo.TransactionFilterParams) (*domainRepo.TransactionSummary, error) {
	summary := &domainRepo.TransactionSummary{}

	base := applyFilters(r.db.WithContext(ctx).Model(&entity.Transaction{}), params)

	if err := base.Session(&gorm.Session{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("type = ?", enum.TransactionTypeStockIn).
		Count(&summary.StockInCount).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("type = ?", enum.TransactionTypeStockOut).
		Count(&summary.StockOutCount).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("type = ?", enum.TransactionTypeStockOut).
		Select("COALESCE(SUM(line_total), 0)").
		Scan(&summary.StockOutValue).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *transactionRepository) DailyStockOutTotals(ctx context.Context, days int) ([]domainRepo.DailyTotal, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	var totals []domainRepo.DailyTotal
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Select("DATE_TRUNC('day', created_at) AS date, COALESCE(SUM(line_total), 0) AS value").
		Where("type = ? AND created_at >= ?", enum.TransactionTypeStockOut, since).
		Group("DATE_TRUNC('day', created_at)").
		Order("date ASC").
		Scan(&totals).Error
	return totals, err
}
