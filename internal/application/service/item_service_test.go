package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stockpro/stockpro-api/pkg/apperror"
)

func newItemFixture() (*fakeStore, *fakeCategoryRepo, *ItemService) {
	store := newFakeStore()
	categoryRepo := newFakeCategoryRepo()
	return store, categoryRepo, NewItemService(&fakeItemRepo{store: store}, categoryRepo)
}

func TestCreateItem(t *testing.T) {
	_, _, svc := newItemFixture()

	barcode := "4006381333931"
	item, err := svc.CreateItem(context.Background(), &CreateItemInput{
		Name:          "Basmati Rice 5kg",
		Barcode:       &barcode,
		Price:         499.99,
		Quantity:      30,
		QuantityAlert: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Basmati Rice 5kg", item.Name)
	assert.Equal(t, "basmati-rice-5kg", item.Slug)
	assert.Equal(t, "pcs", item.Unit) // default when not given
	assert.Equal(t, int64(49999), item.Price)
	assert.Equal(t, 30, item.Quantity)
}

func TestCreateItemDuplicateName(t *testing.T) {
	_, _, svc := newItemFixture()

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: "Olive Oil 1L", Price: 8.5})
	assert.NoError(t, err)

	// Same slug even though the casing differs.
	_, err = svc.CreateItem(context.Background(), &CreateItemInput{Name: "olive oil 1L", Price: 9})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestCreateItemDuplicateBarcode(t *testing.T) {
	_, _, svc := newItemFixture()

	barcode := "5901234123457"
	_, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: "Soap", Barcode: &barcode, Price: 3})
	assert.NoError(t, err)

	_, err = svc.CreateItem(context.Background(), &CreateItemInput{Name: "Other Soap", Barcode: &barcode, Price: 3})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "An item with this barcode already exists", appErr.Message)
}

func TestCreateItemNegativeOpeningStock(t *testing.T) {
	_, _, svc := newItemFixture()

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: "Bread", Price: 2, Quantity: -1})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateItemUnknownCategory(t *testing.T) {
	_, _, svc := newItemFixture()

	badCategory := uuid.New()
	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		Name:       "Bread",
		CategoryID: &badCategory,
		Price:      2,
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Category not found", appErr.Message)
}

func TestUpdateItemRenamesAndReprices(t *testing.T) {
	_, _, svc := newItemFixture()

	item, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: "Milk", Price: 1.2, Quantity: 10})
	assert.NoError(t, err)

	name := "Whole Milk 1L"
	price := 1.35
	updated, err := svc.UpdateItem(context.Background(), item.ID, &UpdateItemInput{
		Name:  &name,
		Price: &price,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Whole Milk 1L", updated.Name)
	assert.Equal(t, "whole-milk-1l", updated.Slug)
	assert.Equal(t, int64(135), updated.Price)
	// Stock is untouched by catalog updates.
	assert.Equal(t, 10, updated.Quantity)
}

func TestUpdateItemKeepingOwnBarcode(t *testing.T) {
	_, _, svc := newItemFixture()

	barcode := "5901234123457"
	item, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: "Soap", Barcode: &barcode, Price: 3})
	assert.NoError(t, err)

	// Re-submitting the item's own barcode is not a conflict.
	updated, err := svc.UpdateItem(context.Background(), item.ID, &UpdateItemInput{Barcode: &barcode})
	assert.NoError(t, err)
	assert.Equal(t, barcode, *updated.Barcode)
}

func TestGetItemByBarcode(t *testing.T) {
	_, _, svc := newItemFixture()

	barcode := "4006381333931"
	created, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: "Rice", Barcode: &barcode, Price: 5})
	assert.NoError(t, err)

	item, err := svc.GetItemByBarcode(context.Background(), barcode)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, item.ID)

	_, err = svc.GetItemByBarcode(context.Background(), "0000000000000")
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestGetLowStockItems(t *testing.T) {
	store, _, svc := newItemFixture()

	lowID := store.addItem("Eggs 12pk", 2500, 2)
	store.mu.Lock()
	store.items[lowID].QuantityAlert = 5
	store.mu.Unlock()
	store.addItem("Bread", 800, 50)

	low, err := svc.GetLowStockItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, low, 1)
	assert.Equal(t, "Eggs 12pk", low[0].Name)
}

func TestDeleteUnknownItem(t *testing.T) {
	_, _, svc := newItemFixture()

	err := svc.DeleteItem(context.Background(), uuid.New())

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}
