package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/apperror"
)

// ErrInsufficientDisplayStock is returned when an add or quantity change asks
// for more than the catalog currently shows on hand. It is a soft bound based
// on possibly stale display data; the checkout commit performs the
// authoritative check.
var ErrInsufficientDisplayStock = &apperror.AppError{
	Code:    http.StatusConflict,
	Message: "Requested quantity exceeds the stock currently shown for this item",
}

// CartService manages per-cashier in-memory cart sessions. The cart is a
// staging area only: nothing here touches stored quantities.
type CartService struct {
	itemRepo repository.ItemRepository

	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
}

// NewCartService creates a new cart service
func NewCartService(itemRepo repository.ItemRepository) *CartService {
	return &CartService{
		itemRepo: itemRepo,
		carts:    make(map[uuid.UUID]*Cart),
	}
}

// cart returns the cashier's cart, creating it on first use. Callers must
// hold s.mu.
func (s *CartService) cart(cashierID uuid.UUID) *Cart {
	c, ok := s.carts[cashierID]
	if !ok {
		c = &Cart{CashierID: cashierID, UpdatedAt: time.Now()}
		s.carts[cashierID] = c
	}
	return c
}

// snapshot returns a copy so callers never see concurrent mutations.
func snapshot(c *Cart) *Cart {
	out := &Cart{CashierID: c.CashierID, UpdatedAt: c.UpdatedAt}
	out.Lines = append(out.Lines, c.Lines...)
	return out
}

// GetCart returns a copy of the cashier's current cart.
func (s *CartService) GetCart(cashierID uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.cart(cashierID))
}

// AddItem adds quantity of an item to the cashier's cart, merging with an
// existing line. The availability check uses the catalog's displayed quantity
// and is advisory: it catches obvious over-asks early but the checkout commit
// is the only authoritative gate.
func (s *CartService) AddItem(ctx context.Context, cashierID, itemID uuid.UUID, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(cashierID)
	requested := quantity
	if line := c.FindLine(itemID); line != nil {
		requested += line.Quantity
	}
	if requested > item.Quantity {
		return nil, ErrInsufficientDisplayStock
	}

	c.AddLine(CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		Unit:      item.Unit,
		UnitPrice: item.Price,
		Quantity:  quantity,
	})
	return snapshot(c), nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, cashierID, itemID uuid.UUID, quantity int) (*Cart, error) {
	if quantity > 0 {
		item, err := s.itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, apperror.NewNotFoundError("Item")
		}
		if quantity > item.Quantity {
			return nil, ErrInsufficientDisplayStock
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(cashierID)
	if quantity > 0 && c.FindLine(itemID) == nil {
		return nil, apperror.NewNotFoundError("Cart line")
	}
	c.SetQuantity(itemID, quantity)
	return snapshot(c), nil
}

// RemoveItem deletes a line from the cart. Removing an absent item is not an
// error.
func (s *CartService) RemoveItem(cashierID, itemID uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(cashierID)
	c.RemoveLine(itemID)
	return snapshot(c)
}

// ClearCart empties the cashier's cart (abandoned checkout).
func (s *CartService) ClearCart(cashierID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(cashierID).Clear()
}

// TakeForCheckout returns the live cart for the checkout commit. The checkout
// service clears it only after a successful commit, so a rejected checkout
// leaves the lines in place for correction.
func (s *CartService) TakeForCheckout(cashierID uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.cart(cashierID))
}
