package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/apperror"
)

// TransactionService reads the stock movement ledger for reporting.
type TransactionService struct {
	txnRepo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{txnRepo: txnRepo}
}

// GetTransaction retrieves one ledger entry by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// ListTransactions retrieves ledger entries with filtering and pagination
func (s *TransactionService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return s.txnRepo.List(ctx, params)
}

// GetSummary aggregates ledger counts and values over the given filters
func (s *TransactionService) GetSummary(ctx context.Context, params *repository.TransactionFilterParams) (*repository.TransactionSummary, error) {
	return s.txnRepo.Summary(ctx, params)
}
