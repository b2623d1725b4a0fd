package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stockpro/stockpro-api/internal/config"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/apperror"
)

const testTaxRate = 0.075

func testStoreConfig() config.StoreConfig {
	return config.StoreConfig{
		Name:    "StockPro Supermarket",
		Address: "12 Market Street",
		Phone:   "+1 555 0100",
	}
}

func newCheckoutFixture() (*fakeStore, *CartService, *CheckoutService) {
	store := newFakeStore()
	cartSvc := NewCartService(&fakeItemRepo{store: store})
	checkoutSvc := NewCheckoutService(
		cartSvc,
		&fakeStockLedger{store: store},
		&fakeTxnRepo{store: store},
		testTaxRate,
		testStoreConfig(),
	)
	return store, cartSvc, checkoutSvc
}

func testCashier() repository.Cashier {
	return repository.Cashier{ID: uuid.New(), Email: "cashier@stockpro.test"}
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, _, checkoutSvc := newCheckoutFixture()

	out, err := checkoutSvc.Checkout(context.Background(), testCashier(), nil)

	assert.Nil(t, out)
	assert.Equal(t, apperror.ErrEmptyCart, err)
}

func TestCheckoutCommitsAndClearsCart(t *testing.T) {
	store, cartSvc, checkoutSvc := newCheckoutFixture()
	cashier := testCashier()
	itemID := store.addItem("Rice 5kg", 50000, 10)

	_, err := cartSvc.AddItem(context.Background(), cashier.ID, itemID, 3)
	assert.NoError(t, err)

	out, err := checkoutSvc.Checkout(context.Background(), cashier, nil)
	assert.NoError(t, err)
	assert.NotNil(t, out)

	assert.Equal(t, 7, store.quantity(itemID))

	assert.Len(t, out.Transactions, 1)
	txn := out.Transactions[0]
	assert.Equal(t, enum.TransactionTypeStockOut, txn.Type)
	assert.Equal(t, itemID, txn.ItemID)
	assert.Equal(t, 3, txn.Quantity)
	assert.Equal(t, int64(50000), txn.UnitPrice)
	assert.Equal(t, int64(150000), txn.LineTotal)
	assert.Equal(t, cashier.Email, txn.CashierEmail)
	assert.NotNil(t, txn.CheckoutID)

	assert.Equal(t, 1500.0, out.Receipt.SubTotal)
	assert.Equal(t, 112.50, out.Receipt.Tax)
	assert.Equal(t, 1612.50, out.Receipt.Total)
	assert.Equal(t, cashier.Email, out.Receipt.CashierEmail)
	assert.NotEmpty(t, out.Receipt.ReceiptNo)

	assert.True(t, cartSvc.GetCart(cashier.ID).IsEmpty())
}

func TestCheckoutRejectedOnInsufficientStock(t *testing.T) {
	store, cartSvc, checkoutSvc := newCheckoutFixture()
	cashier := testCashier()
	itemID := store.addItem("Milk 1L", 1200, 2)

	_, err := cartSvc.AddItem(context.Background(), cashier.ID, itemID, 2)
	assert.NoError(t, err)

	// Another till sells a unit before this checkout commits.
	store.setQuantity(itemID, 1)

	out, err := checkoutSvc.Checkout(context.Background(), cashier, nil)
	assert.Nil(t, out)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Len(t, appErr.Errors, 1)
	assert.Contains(t, appErr.Errors[0].Message, "requested 2 but only 1 available")

	// Nothing moved and the cart survives for correction.
	assert.Equal(t, 1, store.quantity(itemID))
	assert.Empty(t, store.transactions())
	assert.Len(t, cartSvc.GetCart(cashier.ID).Lines, 1)
}

func TestCheckoutAllOrNothing(t *testing.T) {
	store, cartSvc, checkoutSvc := newCheckoutFixture()
	cashier := testCashier()
	okItem := store.addItem("Bread", 800, 10)
	shortItem := store.addItem("Eggs 12pk", 2500, 5)

	_, err := cartSvc.AddItem(context.Background(), cashier.ID, okItem, 2)
	assert.NoError(t, err)
	_, err = cartSvc.AddItem(context.Background(), cashier.ID, shortItem, 4)
	assert.NoError(t, err)

	store.setQuantity(shortItem, 3)

	_, err = checkoutSvc.Checkout(context.Background(), cashier, nil)
	assert.Error(t, err)

	// The satisfiable line must not have been decremented either.
	assert.Equal(t, 10, store.quantity(okItem))
	assert.Equal(t, 3, store.quantity(shortItem))
	assert.Empty(t, store.transactions())
}

func TestCheckoutItemDeletedBeforeCommit(t *testing.T) {
	store, cartSvc, checkoutSvc := newCheckoutFixture()
	cashier := testCashier()
	itemID := store.addItem("Soap", 300, 5)

	_, err := cartSvc.AddItem(context.Background(), cashier.ID, itemID, 1)
	assert.NoError(t, err)

	store.removeItem(itemID)

	_, err = checkoutSvc.Checkout(context.Background(), cashier, nil)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "One or more items no longer exist", appErr.Message)
}

func TestCheckoutConcurrentOverlap(t *testing.T) {
	store, cartSvc, checkoutSvc := newCheckoutFixture()
	itemID := store.addItem("Sugar 1kg", 1500, 4)

	first := testCashier()
	second := testCashier()

	_, err := cartSvc.AddItem(context.Background(), first.ID, itemID, 3)
	assert.NoError(t, err)
	_, err = cartSvc.AddItem(context.Background(), second.ID, itemID, 3)
	assert.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, cashier := range []repository.Cashier{first, second} {
		wg.Add(1)
		go func(i int, cashier repository.Cashier) {
			defer wg.Done()
			_, errs[i] = checkoutSvc.Checkout(context.Background(), cashier, nil)
		}(i, cashier)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}

	// Stock only covered one of the two requests. Exactly one commit wins
	// and the count never goes negative.
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.quantity(itemID))
	assert.Len(t, store.transactions(), 1)
}

func TestGetReceiptRebuildsFromLedger(t *testing.T) {
	store, cartSvc, checkoutSvc := newCheckoutFixture()
	cashier := testCashier()
	itemID := store.addItem("Rice 5kg", 50000, 10)

	note := "customer paid cash"
	_, err := cartSvc.AddItem(context.Background(), cashier.ID, itemID, 3)
	assert.NoError(t, err)

	out, err := checkoutSvc.Checkout(context.Background(), cashier, &note)
	assert.NoError(t, err)

	checkoutID, err := uuid.Parse(out.Receipt.CheckoutID)
	assert.NoError(t, err)

	rebuilt, err := checkoutSvc.GetReceipt(context.Background(), checkoutID)
	assert.NoError(t, err)
	assert.Equal(t, out.Receipt.SubTotal, rebuilt.SubTotal)
	assert.Equal(t, out.Receipt.Tax, rebuilt.Tax)
	assert.Equal(t, out.Receipt.Total, rebuilt.Total)
	assert.Equal(t, out.Receipt.CashierEmail, rebuilt.CashierEmail)
	assert.Equal(t, note, rebuilt.Note)
	assert.Len(t, rebuilt.Lines, 1)
	assert.Equal(t, "Rice 5kg", rebuilt.Lines[0].ItemName)
}

func TestGetReceiptUnknownCheckout(t *testing.T) {
	_, _, checkoutSvc := newCheckoutFixture()

	receipt, err := checkoutSvc.GetReceipt(context.Background(), uuid.New())

	assert.Nil(t, receipt)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}
