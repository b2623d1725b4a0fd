package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	domainRepo "github.com/stockpro/stockpro-api/internal/domain/repository"
	"gorm.io/gorm"
)

// errStockCommitRejected signals the transaction callback to roll back when
// one or more lines failed. It never escapes CommitStockOut.
var errStockCommitRejected = errors.New("stock commit rejected")

type stockLedger struct {
	db *gorm.DB
}

// NewStockLedger creates the GORM-backed stock ledger
func NewStockLedger(db *gorm.DB) domainRepo.StockLedger {
	return &stockLedger{db: db}
}

// CommitStockOut decrements stock for every line and appends one Stock Out
// transaction per line, all inside a single database transaction.
//
// Each decrement uses a conditional update:
//
//	UPDATE items SET quantity = quantity - amount WHERE id = ? AND quantity >= amount
//
// so the check and the write are one statement; two concurrent checkouts of
// the same item can never both pass a stale check. A line whose update
// affects zero rows either targets a missing item or asks for more than is on
// hand; the failed lines are re-read to tell the two apart and to report the
// quantity that was actually available. Any failure rolls back everything.
func (l *stockLedger) CommitStockOut(ctx context.Context, checkoutID uuid.UUID, cashier domainRepo.Cashier, note *string, lines []domainRepo.StockOutLine) ([]entity.Transaction, []domainRepo.LineFailure, error) {
	if len(lines) == 0 {
		return nil, nil, nil
	}

	var committed []entity.Transaction
	var failures []domainRepo.LineFailure

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var failedIDs []uuid.UUID
		requested := make(map[uuid.UUID]int, len(lines))

		for _, line := range lines {
			requested[line.ItemID] = line.Quantity

			result := tx.Model(&entity.Item{}).
				Where("id = ? AND quantity >= ?", line.ItemID, line.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, line.ItemID)
			}
		}

		if len(failedIDs) > 0 {
			// Classify each failure: missing item vs. not enough on hand.
			var found []entity.Item
			if err := tx.Where("id IN ?", failedIDs).Find(&found).Error; err != nil {
				return err
			}
			byID := make(map[uuid.UUID]entity.Item, len(found))
			for _, it := range found {
				byID[it.ID] = it
			}

			for _, id := range failedIDs {
				if it, ok := byID[id]; ok {
					failures = append(failures, domainRepo.LineFailure{
						ItemID:    id,
						ItemName:  it.Name,
						Reason:    domainRepo.FailureInsufficientStock,
						Requested: requested[id],
						Available: it.Quantity,
					})
				} else {
					failures = append(failures, domainRepo.LineFailure{
						ItemID:    id,
						Reason:    domainRepo.FailureItemNotFound,
						Requested: requested[id],
					})
				}
			}
			return errStockCommitRejected
		}

		// All decrements succeeded; capture item details for the ledger rows.
		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ItemID)
		}
		var items []entity.Item
		if err := tx.Where("id IN ?", ids).Find(&items).Error; err != nil {
			return err
		}
		byID := make(map[uuid.UUID]entity.Item, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}

		for _, line := range lines {
			it := byID[line.ItemID]
			committed = append(committed, entity.Transaction{
				Type:         enum.TransactionTypeStockOut,
				CheckoutID:   &checkoutID,
				ItemID:       it.ID,
				ItemName:     it.Name,
				Quantity:     line.Quantity,
				Unit:         it.Unit,
				UnitPrice:    it.Price,
				LineTotal:    it.Price * int64(line.Quantity),
				CashierID:    cashier.ID,
				CashierEmail: cashier.Email,
				Note:         note,
			})
		}

		return tx.Create(&committed).Error
	})

	if errors.Is(err, errStockCommitRejected) {
		return nil, failures, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return committed, nil, nil
}

// CommitStockIn increments stock for one item and appends a Stock In
// transaction in the same database transaction. A nil transaction with a nil
// error means the item does not exist.
func (l *stockLedger) CommitStockIn(ctx context.Context, cashier domainRepo.Cashier, itemID uuid.UUID, quantity int, note *string) (*entity.Transaction, error) {
	var record *entity.Transaction

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entity.Item
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // caller sees (nil, nil)
			}
			return err
		}

		result := tx.Model(&entity.Item{}).
			Where("id = ?", itemID).
			Update("quantity", gorm.Expr("quantity + ?", quantity))
		if result.Error != nil {
			return result.Error
		}

		record = &entity.Transaction{
			Type:         enum.TransactionTypeStockIn,
			ItemID:       item.ID,
			ItemName:     item.Name,
			Quantity:     quantity,
			Unit:         item.Unit,
			UnitPrice:    item.Price,
			LineTotal:    item.Price * int64(quantity),
			CashierID:    cashier.ID,
			CashierEmail: cashier.Email,
			Note:         note,
		}
		return tx.Create(record).Error
	})

	return record, err
}
