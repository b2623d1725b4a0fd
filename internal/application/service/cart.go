package service

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CartLine is one requested item in a cart. Name, Unit and UnitPrice are a
// display snapshot taken when the line was added; the checkout commit re-reads
// the authoritative record.
type CartLine struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	UnitPrice int64     `json:"-"` // cents
	Quantity  int       `json:"quantity"`
}

// LineTotal returns the line total in cents.
func (l *CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is one cashier's in-progress checkout. At most one line exists per
// item; adding the same item again merges quantities. Carts live in memory
// and are owned by the cart store, which serializes access.
type Cart struct {
	CashierID uuid.UUID  `json:"cashier_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartTotals is the priced summary of a cart, all in cents.
type CartTotals struct {
	SubTotal int64
	TaxRate  float64
	Tax      int64
	Total    int64
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLine returns the line for an item, or nil.
func (c *Cart) FindLine(itemID uuid.UUID) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}

// AddLine merges quantity into an existing line or appends a new one,
// preserving insertion order.
func (c *Cart) AddLine(line CartLine) {
	if existing := c.FindLine(line.ItemID); existing != nil {
		existing.Quantity += line.Quantity
		c.UpdatedAt = time.Now()
		return
	}
	c.Lines = append(c.Lines, line)
	c.UpdatedAt = time.Now()
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line. Returns false if the item is not in the cart.
func (c *Cart) SetQuantity(itemID uuid.UUID, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveLine(itemID)
	}
	if line := c.FindLine(itemID); line != nil {
		line.Quantity = quantity
		c.UpdatedAt = time.Now()
		return true
	}
	return false
}

// RemoveLine deletes a line. Removing an absent item is a no-op and returns
// false.
func (c *Cart) RemoveLine(itemID uuid.UUID) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.Lines = nil
	c.UpdatedAt = time.Now()
}

// ComputeTotals prices the cart in integer cents. Pure: calling it repeatedly
// never changes the cart or the result.
//
//	subtotal = Σ unit_price × quantity
//	tax      = round(subtotal × rate)
//	total    = subtotal + tax
func (c *Cart) ComputeTotals(taxRate float64) CartTotals {
	var subTotal int64
	for i := range c.Lines {
		subTotal += c.Lines[i].LineTotal()
	}
	tax := int64(math.Round(float64(subTotal) * taxRate))
	return CartTotals{
		SubTotal: subTotal,
		TaxRate:  taxRate,
		Tax:      tax,
		Total:    subTotal + tax,
	}
}
