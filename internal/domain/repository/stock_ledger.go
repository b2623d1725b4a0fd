package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
)

// Cashier identifies the authenticated actor behind a stock movement.
type Cashier struct {
	ID    uuid.UUID
	Email string
}

// StockOutLine is one requested decrement within a checkout.
type StockOutLine struct {
	ItemID   uuid.UUID
	Quantity int
}

// FailureReason classifies why a checkout line was rejected.
type FailureReason string

const (
	FailureItemNotFound      FailureReason = "item_not_found"
	FailureInsufficientStock FailureReason = "insufficient_stock"
)

// LineFailure reports a rejected checkout line with the quantity that was
// actually available at commit time.
type LineFailure struct {
	ItemID    uuid.UUID
	ItemName  string
	Reason    FailureReason
	Requested int
	Available int
}

// StockLedger is the only write path for item quantities. Both operations run
// as a single database transaction covering the quantity change and the
// ledger append, so the two can never diverge.
type StockLedger interface {
	// CommitStockOut atomically decrements stock for every line and appends
	// one Stock Out transaction per line, all inside one transaction.
	// The decrement is conditional (quantity >= requested), which closes the
	// read-modify-write race between concurrent checkouts of the same item.
	// If any line fails the entire transaction is rolled back and the
	// failures are returned with no transactions created — all or nothing.
	CommitStockOut(ctx context.Context, checkoutID uuid.UUID, cashier Cashier, note *string, lines []StockOutLine) ([]entity.Transaction, []LineFailure, error)

	// CommitStockIn atomically increments stock for one item and appends a
	// Stock In transaction in the same database transaction.
	// A nil transaction with a nil error means the item does not exist.
	CommitStockIn(ctx context.Context, cashier Cashier, itemID uuid.UUID, quantity int, note *string) (*entity.Transaction, error)
}
