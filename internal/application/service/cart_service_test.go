package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stockpro/stockpro-api/pkg/apperror"
)

func newCartFixture() (*fakeStore, *CartService) {
	store := newFakeStore()
	return store, NewCartService(&fakeItemRepo{store: store})
}

func TestCartServiceAddUnknownItem(t *testing.T) {
	_, cartSvc := newCartFixture()

	cart, err := cartSvc.AddItem(context.Background(), uuid.New(), uuid.New(), 1)

	assert.Nil(t, cart)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Item not found", appErr.Message)
}

func TestCartServiceAddZeroQuantity(t *testing.T) {
	store, cartSvc := newCartFixture()
	itemID := store.addItem("Bread", 800, 10)

	_, err := cartSvc.AddItem(context.Background(), uuid.New(), itemID, 0)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestCartServiceAddBeyondDisplayStock(t *testing.T) {
	store, cartSvc := newCartFixture()
	cashierID := uuid.New()
	itemID := store.addItem("Milk 1L", 1200, 3)

	_, err := cartSvc.AddItem(context.Background(), cashierID, itemID, 2)
	assert.NoError(t, err)

	// 2 already staged, 2 more would exceed the 3 on display.
	_, err = cartSvc.AddItem(context.Background(), cashierID, itemID, 2)
	assert.Equal(t, ErrInsufficientDisplayStock, err)

	cart := cartSvc.GetCart(cashierID)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartServiceAddMergesLines(t *testing.T) {
	store, cartSvc := newCartFixture()
	cashierID := uuid.New()
	itemID := store.addItem("Rice 5kg", 50000, 10)

	_, err := cartSvc.AddItem(context.Background(), cashierID, itemID, 2)
	assert.NoError(t, err)
	cart, err := cartSvc.AddItem(context.Background(), cashierID, itemID, 3)
	assert.NoError(t, err)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, int64(50000), cart.Lines[0].UnitPrice)
}

func TestCartServiceSetQuantityZeroRemoves(t *testing.T) {
	store, cartSvc := newCartFixture()
	cashierID := uuid.New()
	itemID := store.addItem("Soap", 300, 5)

	_, err := cartSvc.AddItem(context.Background(), cashierID, itemID, 2)
	assert.NoError(t, err)

	cart, err := cartSvc.SetQuantity(context.Background(), cashierID, itemID, 0)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartServiceSetQuantityAbsentLine(t *testing.T) {
	store, cartSvc := newCartFixture()
	itemID := store.addItem("Soap", 300, 5)

	_, err := cartSvc.SetQuantity(context.Background(), uuid.New(), itemID, 2)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Cart line not found", appErr.Message)
}

func TestCartServiceSetQuantityBeyondDisplayStock(t *testing.T) {
	store, cartSvc := newCartFixture()
	cashierID := uuid.New()
	itemID := store.addItem("Eggs 12pk", 2500, 4)

	_, err := cartSvc.AddItem(context.Background(), cashierID, itemID, 2)
	assert.NoError(t, err)

	_, err = cartSvc.SetQuantity(context.Background(), cashierID, itemID, 5)
	assert.Equal(t, ErrInsufficientDisplayStock, err)
}

func TestCartServiceRemoveAbsentItem(t *testing.T) {
	_, cartSvc := newCartFixture()
	cashierID := uuid.New()

	cart := cartSvc.RemoveItem(cashierID, uuid.New())

	assert.True(t, cart.IsEmpty())
}

func TestCartServiceSnapshotIsolation(t *testing.T) {
	store, cartSvc := newCartFixture()
	cashierID := uuid.New()
	itemID := store.addItem("Bread", 800, 10)

	cart, err := cartSvc.AddItem(context.Background(), cashierID, itemID, 1)
	assert.NoError(t, err)

	// Mutating the returned copy must not touch the stored cart.
	cart.Lines[0].Quantity = 99

	assert.Equal(t, 1, cartSvc.GetCart(cashierID).Lines[0].Quantity)
}

func TestCartServiceCartsAreIsolatedPerCashier(t *testing.T) {
	store, cartSvc := newCartFixture()
	itemID := store.addItem("Milk 1L", 1200, 10)
	first := uuid.New()
	second := uuid.New()

	_, err := cartSvc.AddItem(context.Background(), first, itemID, 2)
	assert.NoError(t, err)

	assert.True(t, cartSvc.GetCart(second).IsEmpty())
	assert.Len(t, cartSvc.GetCart(first).Lines, 1)
}
