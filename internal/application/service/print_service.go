package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/pkg/printer"
)

// PrintService renders receipts and sends them to the thermal printer.
type PrintService struct {
	printer         printer.Printer
	checkoutService *CheckoutService
	printerType     string
}

// NewPrintService creates a new print service
func NewPrintService(p printer.Printer, checkoutService *CheckoutService, printerType string) *PrintService {
	return &PrintService{
		printer:         p,
		checkoutService: checkoutService,
		printerType:     printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrintService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintCheckoutReceipt rebuilds the receipt of a committed checkout and sends
// it to the printer.
func (s *PrintService) PrintCheckoutReceipt(ctx context.Context, checkoutID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.checkoutService.GetReceipt(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		log.Printf("Printer error (checkout %s): %v", checkoutID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes for a 58mm printer.
// Pure projection: it never mutates the receipt.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Timestamp.Format("2006-01-02 15:04"))
	if r.CashierEmail != "" {
		doc.KeyValue("Cashier:", r.CashierEmail)
	}

	doc.Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Quantity, line.ItemName, fmt.Sprintf("%.2f", line.LineTotal))
		if line.Quantity > 1 {
			doc.TextF("  @ %.2f each", line.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Tax > 0 {
		doc.KeyValue(fmt.Sprintf("Tax (%.1f%%):", r.TaxRate*100), fmt.Sprintf("%.2f", r.Tax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.Note != "" {
		doc.Separator('-').
			Text(r.Note)
	}

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for shopping!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		Cut()

	return doc.Bytes()
}

// RenderReceiptText renders a receipt as plain text for on-screen display.
func RenderReceiptText(r *entity.Receipt) string {
	const width = 32
	var b strings.Builder

	center := func(s string) {
		pad := (width - len(s)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad) + s + "\n")
	}
	kv := func(k, v string) {
		spaces := width - len(k) - len(v)
		if spaces < 1 {
			spaces = 1
		}
		b.WriteString(k + strings.Repeat(" ", spaces) + v + "\n")
	}
	sep := func() { b.WriteString(strings.Repeat("-", width) + "\n") }

	center(r.Header.StoreName)
	if r.Header.Address != "" {
		center(r.Header.Address)
	}
	if r.Header.Phone != "" {
		center(r.Header.Phone)
	}
	sep()
	kv("Receipt:", r.ReceiptNo)
	kv("Date:", r.Timestamp.Format("2006-01-02 15:04"))
	if r.CashierEmail != "" {
		kv("Cashier:", r.CashierEmail)
	}
	sep()
	for _, line := range r.Lines {
		kv(fmt.Sprintf("%dx %s", line.Quantity, line.ItemName),
			fmt.Sprintf("%.2f", line.LineTotal))
	}
	sep()
	kv("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Tax > 0 {
		kv(fmt.Sprintf("Tax (%.1f%%):", r.TaxRate*100), fmt.Sprintf("%.2f", r.Tax))
	}
	kv("TOTAL:", fmt.Sprintf("%.2f", r.Total))
	sep()
	center("Thank you for shopping!")

	return b.String()
}
