package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/pkg/apperror"
	"github.com/stockpro/stockpro-api/pkg/utils"
)

// ItemService handles inventory item catalog operations. It never touches
// on-hand quantities; those move only through the stock ledger.
type ItemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateItemInput represents the input for creating an item
type CreateItemInput struct {
	Name          string
	CategoryID    *uuid.UUID
	Unit          string
	Barcode       *string
	Price         float64 // decimal, converted to cents for storage
	Quantity      int     // opening stock
	QuantityAlert int
	Notes         *string
}

// CreateItem creates a new inventory item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.itemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this name already exists")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		byBarcode, err := s.itemRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if byBarcode != nil {
			return nil, apperror.NewConflictError("An item with this barcode already exists")
		}
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Opening stock cannot be negative")
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	item := &entity.Item{
		Name:          input.Name,
		Slug:          slug,
		CategoryID:    input.CategoryID,
		Unit:          unit,
		Barcode:       input.Barcode,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		Notes:         input.Notes,
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

// UpdateItemInput represents the input for updating an item. Quantity is
// absent on purpose: stock moves only through stock-in and checkout.
type UpdateItemInput struct {
	Name          *string
	CategoryID    *uuid.UUID
	Unit          *string
	Barcode       *string
	Price         *float64
	QuantityAlert *int
	Notes         *string
}

// UpdateItem updates an existing item's catalog fields
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.Name != nil && *input.Name != item.Name {
		slug := utils.Slugify(*input.Name)
		existing, err := s.itemRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperror.NewConflictError("An item with this name already exists")
		}
		item.Name = *input.Name
		item.Slug = slug
	}

	if input.Barcode != nil && *input.Barcode != "" {
		byBarcode, err := s.itemRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if byBarcode != nil && byBarcode.ID != item.ID {
			return nil, apperror.NewConflictError("An item with this barcode already exists")
		}
		item.Barcode = input.Barcode
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = input.CategoryID
	}

	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Price != nil {
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.QuantityAlert != nil {
		item.QuantityAlert = *input.QuantityAlert
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// GetItemByBarcode resolves a scanned barcode to an item
func (s *ItemService) GetItemByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems retrieves items with filtering and pagination
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	return s.itemRepo.List(ctx, params)
}

// GetLowStockItems returns items at or below their alert threshold
func (s *ItemService) GetLowStockItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.GetLowStock(ctx)
}

// DeleteItem soft-deletes an item. Its ledger history is preserved because
// transactions denormalize the item name at commit time.
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}
