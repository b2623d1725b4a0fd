package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/config"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/apperror"
	"github.com/stockpro/stockpro-api/pkg/utils"
)

// CheckoutService commits a cashier's cart against the stock ledger and
// builds the receipt. The commit is all-or-nothing: either every cart line
// decrements stock and writes its ledger row, or nothing changes at all.
type CheckoutService struct {
	cartService *CartService
	ledger      repository.StockLedger
	txnRepo     repository.TransactionRepository
	taxRate     float64
	store       config.StoreConfig
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartService *CartService,
	ledger repository.StockLedger,
	txnRepo repository.TransactionRepository,
	taxRate float64,
	store config.StoreConfig,
) *CheckoutService {
	return &CheckoutService{
		cartService: cartService,
		ledger:      ledger,
		txnRepo:     txnRepo,
		taxRate:     taxRate,
		store:       store,
	}
}

// CheckoutOutput is the result of a committed checkout.
type CheckoutOutput struct {
	Receipt      *entity.Receipt      `json:"receipt"`
	Transactions []entity.Transaction `json:"transactions"`
}

// Checkout validates the cart, commits every line atomically and returns the
// receipt. On rejection the cart is left untouched so the cashier can adjust
// the offending lines.
func (s *CheckoutService) Checkout(ctx context.Context, cashier repository.Cashier, note *string) (*CheckoutOutput, error) {
	cart := s.cartService.TakeForCheckout(cashier.ID)
	if cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	lines := make([]repository.StockOutLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		if l.Quantity < 1 {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Invalid quantity for %s", l.Name))
		}
		lines = append(lines, repository.StockOutLine{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
		})
	}

	checkoutID := uuid.New()
	committed, failures, err := s.ledger.CommitStockOut(ctx, checkoutID, cashier, note, lines)
	if err != nil {
		return nil, err
	}
	if len(failures) > 0 {
		return nil, failuresToError(failures)
	}

	receipt := BuildReceipt(s.store, checkoutID, committed, s.taxRate, note)

	// Cart is consumed only after the commit succeeded.
	s.cartService.ClearCart(cashier.ID)

	return &CheckoutOutput{
		Receipt:      receipt,
		Transactions: committed,
	}, nil
}

// GetReceipt rebuilds the receipt of a past checkout from its ledger rows.
func (s *CheckoutService) GetReceipt(ctx context.Context, checkoutID uuid.UUID) (*entity.Receipt, error) {
	txns, err := s.txnRepo.GetByCheckoutID(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperror.NewNotFoundError("Checkout")
	}

	var note *string
	if txns[0].Note != nil {
		note = txns[0].Note
	}
	return BuildReceipt(s.store, checkoutID, txns, s.taxRate, note), nil
}

// failuresToError maps rejected lines to the API error shape: 404 when an
// item vanished, 409 with per-line availability otherwise.
func failuresToError(failures []repository.LineFailure) error {
	fieldErrors := make([]apperror.FieldError, 0, len(failures))
	notFoundOnly := true
	for _, f := range failures {
		switch f.Reason {
		case repository.FailureItemNotFound:
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   f.ItemID.String(),
				Message: "Item no longer exists",
			})
		default:
			notFoundOnly = false
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: f.ItemID.String(),
				Message: fmt.Sprintf("%s: requested %d but only %d available",
					f.ItemName, f.Requested, f.Available),
			})
		}
	}
	if notFoundOnly {
		return &apperror.AppError{
			Code:    apperror.ErrNotFound.Code,
			Message: "One or more items no longer exist",
			Errors:  fieldErrors,
		}
	}
	return apperror.NewInsufficientStockError(fieldErrors)
}

// BuildReceipt projects the ledger rows of one checkout into a Receipt.
// All arithmetic happens in integer cents; amounts are converted to decimal
// only at this display boundary.
func BuildReceipt(store config.StoreConfig, checkoutID uuid.UUID, txns []entity.Transaction, taxRate float64, note *string) *entity.Receipt {
	lines := make([]entity.ReceiptLine, 0, len(txns))
	var subTotal int64
	for _, t := range txns {
		lines = append(lines, entity.ReceiptLine{
			ItemName:  t.ItemName,
			Quantity:  t.Quantity,
			Unit:      t.Unit,
			UnitPrice: float64(t.UnitPrice) / 100,
			LineTotal: float64(t.LineTotal) / 100,
		})
		subTotal += t.LineTotal
	}
	tax := int64(math.Round(float64(subTotal) * taxRate))

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: store.Name,
			Address:   store.Address,
			Phone:     store.Phone,
		},
		ReceiptNo:    utils.GenerateReceiptNo(),
		CheckoutID:   checkoutID.String(),
		Lines:        lines,
		SubTotal:     float64(subTotal) / 100,
		TaxRate:      taxRate,
		Tax:          float64(tax) / 100,
		Total:        float64(subTotal+tax) / 100,
		Timestamp:    time.Now(),
	}
	if len(txns) > 0 {
		receipt.CashierEmail = txns[0].CashierEmail
		receipt.Timestamp = txns[0].CreatedAt
	}
	if note != nil {
		receipt.Note = *note
	}
	return receipt
}
