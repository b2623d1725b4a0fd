package request

import "github.com/google/uuid"

// CreateItemRequest represents an item creation request. Quantity here is the
// opening stock; later changes go through stock-in and checkout only.
type CreateItemRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          string     `json:"name" binding:"required,min=2,max=255"`
	Unit          string     `json:"unit" binding:"omitempty,max=50"`
	Barcode       *string    `json:"barcode" binding:"omitempty,max=100"`
	Price         float64    `json:"price" binding:"min=0"`
	Quantity      int        `json:"quantity" binding:"min=0"`
	QuantityAlert int        `json:"quantity_alert" binding:"min=0"`
	Notes         *string    `json:"notes"`
}

// UpdateItemRequest represents an item update request. There is no quantity
// field: on-hand stock cannot be edited directly.
type UpdateItemRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Unit          *string    `json:"unit" binding:"omitempty,max=50"`
	Barcode       *string    `json:"barcode" binding:"omitempty,max=100"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	QuantityAlert *int       `json:"quantity_alert" binding:"omitempty,min=0"`
	Notes         *string    `json:"notes"`
}

// ItemFilterRequest represents item list filter parameters
type ItemFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateCategoryRequest represents a category rename request
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}
