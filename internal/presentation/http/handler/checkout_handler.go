package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/application/service"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/request"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout commits the cashier's cart. The route carries the
// IdempotencyRequired middleware, so a duplicate submit with the same
// Idempotency-Key replays the original receipt.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	output, err := h.checkoutService.Checkout(c.Request.Context(), *cashier, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed successfully", gin.H{
		"receipt":      output.Receipt,
		"receipt_text": service.RenderReceiptText(output.Receipt),
		"transactions": output.Transactions,
	})
}

// GetReceipt rebuilds the receipt of a past checkout
func (h *CheckoutHandler) GetReceipt(c *gin.Context) {
	checkoutID, err := uuid.Parse(c.Param("checkoutId"))
	if err != nil {
		response.BadRequest(c, "Invalid checkout ID")
		return
	}

	receipt, err := h.checkoutService.GetReceipt(c.Request.Context(), checkoutID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", gin.H{
		"receipt":      receipt,
		"receipt_text": service.RenderReceiptText(receipt),
	})
}
