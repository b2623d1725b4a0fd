package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/pagination"
)

// fakeStore backs the in-memory fakes below. One store is shared between the
// item repository, the stock ledger and the transaction repository so the
// display checks and the commit see the same state, like they do against the
// real database.
type fakeStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Item
	txns  []entity.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[uuid.UUID]*entity.Item)}
}

func (s *fakeStore) addItem(name string, priceCents int64, quantity int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.items[id] = &entity.Item{
		ID:       id,
		Name:     name,
		Unit:     "pcs",
		Price:    priceCents,
		Quantity: quantity,
	}
	return id
}

func (s *fakeStore) setQuantity(id uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		it.Quantity = quantity
	}
}

func (s *fakeStore) removeItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *fakeStore) quantity(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		return it.Quantity
	}
	return -1
}

func (s *fakeStore) transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

type fakeItemRepo struct {
	store *fakeStore
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.store.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	it, ok := r.store.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Item
	for _, id := range ids {
		if it, ok := r.store.items[id]; ok {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetBySlug(ctx context.Context, slug string) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, it := range r.store.items {
		if it.Slug == slug {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, it := range r.store.items {
		if it.Barcode != nil && *it.Barcode == barcode {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *item
	r.store.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.items, id)
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Item
	for _, it := range r.store.items {
		out = append(out, *it)
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) GetLowStock(ctx context.Context) ([]entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Item
	for _, it := range r.store.items {
		if it.Quantity <= it.QuantityAlert {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.items)), nil
}

func (r *fakeItemRepo) CountLowStock(ctx context.Context) (int64, error) {
	return 0, nil
}

// fakeStockLedger mimics the database ledger's contract: conditional
// decrements, all-or-nothing commits and one appended row per movement, all
// under a single lock standing in for the transaction.
type fakeStockLedger struct {
	store *fakeStore
}

func (l *fakeStockLedger) CommitStockOut(ctx context.Context, checkoutID uuid.UUID, cashier repository.Cashier, note *string, lines []repository.StockOutLine) ([]entity.Transaction, []repository.LineFailure, error) {
	if len(lines) == 0 {
		return nil, nil, nil
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	var failures []repository.LineFailure
	for _, line := range lines {
		it, ok := l.store.items[line.ItemID]
		if !ok {
			failures = append(failures, repository.LineFailure{
				ItemID:    line.ItemID,
				Reason:    repository.FailureItemNotFound,
				Requested: line.Quantity,
			})
			continue
		}
		if it.Quantity < line.Quantity {
			failures = append(failures, repository.LineFailure{
				ItemID:    line.ItemID,
				ItemName:  it.Name,
				Reason:    repository.FailureInsufficientStock,
				Requested: line.Quantity,
				Available: it.Quantity,
			})
		}
	}
	if len(failures) > 0 {
		return nil, failures, nil
	}

	committed := make([]entity.Transaction, 0, len(lines))
	cid := checkoutID
	for _, line := range lines {
		it := l.store.items[line.ItemID]
		it.Quantity -= line.Quantity
		committed = append(committed, entity.Transaction{
			ID:           uuid.New(),
			Type:         enum.TransactionTypeStockOut,
			CheckoutID:   &cid,
			ItemID:       it.ID,
			ItemName:     it.Name,
			Quantity:     line.Quantity,
			Unit:         it.Unit,
			UnitPrice:    it.Price,
			LineTotal:    it.Price * int64(line.Quantity),
			CashierID:    cashier.ID,
			CashierEmail: cashier.Email,
			Note:         note,
			CreatedAt:    time.Now(),
		})
	}
	l.store.txns = append(l.store.txns, committed...)
	return committed, nil, nil
}

func (l *fakeStockLedger) CommitStockIn(ctx context.Context, cashier repository.Cashier, itemID uuid.UUID, quantity int, note *string) (*entity.Transaction, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	it, ok := l.store.items[itemID]
	if !ok {
		return nil, nil
	}
	it.Quantity += quantity

	txn := entity.Transaction{
		ID:           uuid.New(),
		Type:         enum.TransactionTypeStockIn,
		ItemID:       it.ID,
		ItemName:     it.Name,
		Quantity:     quantity,
		Unit:         it.Unit,
		UnitPrice:    it.Price,
		LineTotal:    it.Price * int64(quantity),
		CashierID:    cashier.ID,
		CashierEmail: cashier.Email,
		Note:         note,
		CreatedAt:    time.Now(),
	}
	l.store.txns = append(l.store.txns, txn)
	return &txn, nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeTxnRepo struct {
	store *fakeStore
}

func (r *fakeTxnRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.txns {
		if r.store.txns[i].ID == id {
			cp := r.store.txns[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTxnRepo) GetByCheckoutID(ctx context.Context, checkoutID uuid.UUID) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Transaction
	for i := range r.store.txns {
		if r.store.txns[i].CheckoutID != nil && *r.store.txns[i].CheckoutID == checkoutID {
			out = append(out, r.store.txns[i])
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) List(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	all := r.store.transactions()
	return all, int64(len(all)), nil
}

func (r *fakeTxnRepo) ListAll(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, error) {
	return r.store.transactions(), nil
}

func (r *fakeTxnRepo) Recent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	return r.store.transactions(), nil
}

func (r *fakeTxnRepo) Summary(ctx context.Context, params *repository.TransactionFilterParams) (*repository.TransactionSummary, error) {
	summary := &repository.TransactionSummary{}
	for _, t := range r.store.transactions() {
		summary.Total++
		switch t.Type {
		case enum.TransactionTypeStockIn:
			summary.StockInCount++
		case enum.TransactionTypeStockOut:
			summary.StockOutCount++
			summary.StockOutValue += t.LineTotal
		}
	}
	return summary, nil
}

func (r *fakeTxnRepo) DailyStockOutTotals(ctx context.Context, days int) ([]repository.DailyTotal, error) {
	return nil, nil
}
