package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func newExportFixture(t *testing.T) (*fakeStore, *ExportService) {
	t.Helper()
	store := newFakeStore()
	ledger := &fakeStockLedger{store: store}
	cashier := testCashier()

	riceID := store.addItem("Rice 5kg", 50000, 10)
	milkID := store.addItem("Milk 1L", 1250, 20)

	_, err := ledger.CommitStockIn(context.Background(), cashier, riceID, 5, nil)
	assert.NoError(t, err)
	_, err = ledger.CommitStockIn(context.Background(), cashier, milkID, 12, nil)
	assert.NoError(t, err)

	return store, NewExportService(&fakeTxnRepo{store: store})
}

func TestExportCSV(t *testing.T) {
	_, svc := newExportFixture(t)

	data, err := svc.ExportCSV(context.Background(), nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, exportHeaders, records[0])

	rice := records[1]
	assert.Equal(t, "Stock In", rice[0])
	assert.Equal(t, "Rice 5kg", rice[1])
	assert.Equal(t, "5", rice[2])
	assert.Equal(t, "pcs", rice[3])
	assert.Equal(t, "500.00", rice[4])
	assert.Equal(t, "2500.00", rice[5])
	assert.Equal(t, "cashier@stockpro.test", rice[6])

	milk := records[2]
	assert.Equal(t, "Milk 1L", milk[1])
	assert.Equal(t, "12.50", milk[4])
	assert.Equal(t, "150.00", milk[5])
}

func TestExportXLSX(t *testing.T) {
	_, svc := newExportFixture(t)

	data, err := svc.ExportXLSX(context.Background(), nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Rice 5kg", rows[1][1])

	// The workbook must not keep the default empty sheet.
	assert.NotContains(t, f.GetSheetList(), "Sheet1")
}
