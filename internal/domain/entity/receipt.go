package entity

import "time"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptLine represents a single line item on a receipt.
type ReceiptLine struct {
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Receipt is a value object describing one completed checkout.
// It is NOT a database entity — it is built from the ledger rows a checkout
// wrote and can always be reconstructed from the transactions sharing its
// CheckoutID.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	ReceiptNo    string        `json:"receipt_no"`
	CheckoutID   string        `json:"checkout_id"`
	CashierEmail string        `json:"cashier_email"`
	Lines        []ReceiptLine `json:"lines"`
	SubTotal     float64       `json:"sub_total"`
	TaxRate      float64       `json:"tax_rate"`
	Tax          float64       `json:"tax"`
	Total        float64       `json:"total"`
	Note         string        `json:"note,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}
