package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/apperror"
)

// StockInService records incoming stock. The increment and its ledger row are
// written by the stock ledger in one database transaction.
type StockInService struct {
	ledger repository.StockLedger
}

// NewStockInService creates a new stock-in service
func NewStockInService(ledger repository.StockLedger) *StockInService {
	return &StockInService{ledger: ledger}
}

// StockIn adds quantity to an item and appends a Stock In transaction.
func (s *StockInService) StockIn(ctx context.Context, cashier repository.Cashier, itemID uuid.UUID, quantity int, note *string) (*entity.Transaction, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	txn, err := s.ledger.CommitStockIn(ctx, cashier, itemID, quantity, note)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return txn, nil
}
