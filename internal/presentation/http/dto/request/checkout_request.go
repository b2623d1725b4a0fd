package request

import "github.com/google/uuid"

// AddCartItemRequest adds quantity of an item to the cashier's cart
type AddCartItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// SetCartQuantityRequest replaces a cart line's quantity. Zero removes the
// line, so no minimum is enforced here.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest commits the cashier's cart
type CheckoutRequest struct {
	Note *string `json:"note" binding:"omitempty,max=500"`
}

// StockInRequest records incoming stock for one item
type StockInRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
	Note     *string   `json:"note" binding:"omitempty,max=500"`
}

// TransactionFilterRequest represents ledger list filter parameters
type TransactionFilterRequest struct {
	Search    string `form:"search"`
	Type      string `form:"type"` // "in" or "out"
	ItemID    string `form:"item_id"`
	CashierID string `form:"cashier_id"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
