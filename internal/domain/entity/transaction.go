package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction is one immutable entry in the stock movement ledger.
// Rows are written exactly once by a committed checkout line or a stock-in
// submission and never updated or deleted afterwards. ItemName, Unit and
// UnitPrice are captured at commit time so the ledger stays meaningful even
// if the item is later renamed or repriced.
type Transaction struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Type         enum.TransactionType `gorm:"not null;index" json:"type"`
	CheckoutID   *uuid.UUID           `gorm:"type:uuid;index" json:"checkout_id,omitempty"` // groups the lines of one checkout
	ItemID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName     string               `gorm:"size:255;not null" json:"item_name"`
	Quantity     int                  `gorm:"not null" json:"quantity"` // magnitude of the movement
	Unit         string               `gorm:"size:50" json:"unit"`
	UnitPrice    int64                `gorm:"not null" json:"-"` // Stored in cents
	LineTotal    int64                `gorm:"not null" json:"-"` // Stored in cents, = UnitPrice * Quantity
	CashierID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierEmail string               `gorm:"size:255;not null" json:"cashier_email"`
	Note         *string              `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time            `gorm:"index" json:"created_at"` // server-assigned
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(t),
		UnitPrice: float64(t.UnitPrice) / 100,
		LineTotal: float64(t.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
