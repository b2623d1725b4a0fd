package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/application/service"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/request"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/response"
)

// CartHandler handles the cashier's cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
	taxRate     float64
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, taxRate float64) *CartHandler {
	return &CartHandler{cartService: cartService, taxRate: taxRate}
}

// cartPayload attaches the priced totals to a cart response
func (h *CartHandler) cartPayload(cart *service.Cart) gin.H {
	totals := cart.ComputeTotals(h.taxRate)
	return gin.H{
		"cart": cart,
		"totals": gin.H{
			"sub_total": float64(totals.SubTotal) / 100,
			"tax_rate":  totals.TaxRate,
			"tax":       float64(totals.Tax) / 100,
			"total":     float64(totals.Total) / 100,
		},
	}
}

// Get returns the cashier's current cart with totals
func (h *CartHandler) Get(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cart := h.cartService.GetCart(cashier.ID)
	response.OK(c, "Cart retrieved successfully", h.cartPayload(cart))
}

// AddItem adds an item to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cashier.ID, req.ItemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", h.cartPayload(cart))
}

// SetQuantity replaces a cart line's quantity; zero removes the line
func (h *CartHandler) SetQuantity(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), cashier.ID, itemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", h.cartPayload(cart))
}

// RemoveItem removes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	cart := h.cartService.RemoveItem(cashier.ID, itemID)
	response.OK(c, "Item removed from cart", h.cartPayload(cart))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	h.cartService.ClearCart(cashier.ID)
	response.OK(c, "Cart cleared", h.cartPayload(h.cartService.GetCart(cashier.ID)))
}
