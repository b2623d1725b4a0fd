package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"github.com/stockpro/stockpro-api/pkg/apperror"
)

func newStockInFixture() (*fakeStore, *StockInService) {
	store := newFakeStore()
	return store, NewStockInService(&fakeStockLedger{store: store})
}

func TestStockInRejectsNonPositiveQuantity(t *testing.T) {
	store, svc := newStockInFixture()
	itemID := store.addItem("Rice 5kg", 50000, 10)

	for _, qty := range []int{0, -5} {
		txn, err := svc.StockIn(context.Background(), testCashier(), itemID, qty, nil)

		assert.Nil(t, txn)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, 400, appErr.Code)
	}
	assert.Equal(t, 10, store.quantity(itemID))
}

func TestStockInUnknownItem(t *testing.T) {
	_, svc := newStockInFixture()

	txn, err := svc.StockIn(context.Background(), testCashier(), uuid.New(), 5, nil)

	assert.Nil(t, txn)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Item not found", appErr.Message)
}

func TestStockInIncrementsAndRecords(t *testing.T) {
	store, svc := newStockInFixture()
	cashier := testCashier()
	itemID := store.addItem("Milk 1L", 1200, 4)

	note := "morning delivery"
	txn, err := svc.StockIn(context.Background(), cashier, itemID, 24, &note)

	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, 28, store.quantity(itemID))

	assert.Equal(t, enum.TransactionTypeStockIn, txn.Type)
	assert.Equal(t, itemID, txn.ItemID)
	assert.Equal(t, "Milk 1L", txn.ItemName)
	assert.Equal(t, 24, txn.Quantity)
	assert.Equal(t, int64(1200), txn.UnitPrice)
	assert.Equal(t, int64(28800), txn.LineTotal)
	assert.Equal(t, cashier.Email, txn.CashierEmail)
	assert.Nil(t, txn.CheckoutID)

	assert.Len(t, store.transactions(), 1)
}
