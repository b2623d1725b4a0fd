package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService produces downloadable reports from the transaction ledger.
type ExportService struct {
	txnRepo repository.TransactionRepository
}

// NewExportService creates a new export service
func NewExportService(txnRepo repository.TransactionRepository) *ExportService {
	return &ExportService{txnRepo: txnRepo}
}

var exportHeaders = []string{
	"Type", "Item", "Quantity", "Unit", "Unit Price", "Line Total", "Cashier", "Date",
}

func exportRow(t *entity.Transaction) []string {
	return []string{
		t.Type.String(),
		t.ItemName,
		fmt.Sprintf("%d", t.Quantity),
		t.Unit,
		fmt.Sprintf("%.2f", float64(t.UnitPrice)/100),
		fmt.Sprintf("%.2f", float64(t.LineTotal)/100),
		t.CashierEmail,
		t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ExportCSV writes the filtered ledger as CSV bytes.
func (s *ExportService) ExportCSV(ctx context.Context, params *repository.TransactionFilterParams) ([]byte, error) {
	txns, err := s.txnRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for i := range txns {
		if err := w.Write(exportRow(&txns[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX writes the filtered ledger as an XLSX workbook.
func (s *ExportService) ExportXLSX(ctx context.Context, params *repository.TransactionFilterParams) ([]byte, error) {
	txns, err := s.txnRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx := range txns {
		t := &txns[rowIdx]
		row := rowIdx + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, t.Type.String())
		write(2, t.ItemName)
		write(3, t.Quantity)
		write(4, t.Unit)
		write(5, float64(t.UnitPrice)/100)
		write(6, float64(t.LineTotal)/100)
		write(7, t.CashierEmail)
		write(8, t.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	// Drop the default sheet excelize creates
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
