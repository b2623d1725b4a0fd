package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/application/service"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printService *service.PrintService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printService *service.PrintService) *PrinterHandler {
	return &PrinterHandler{printService: printService}
}

// Status returns printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.printService.GetStatus())
}

// PrintReceipt reprints the receipt of a committed checkout
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	checkoutID, err := uuid.Parse(c.Param("checkoutId"))
	if err != nil {
		response.BadRequest(c, "Invalid checkout ID")
		return
	}

	receipt, err := h.printService.PrintCheckoutReceipt(c.Request.Context(), checkoutID)
	if err != nil {
		// The receipt may still be useful when only the hardware failed.
		if receipt != nil {
			response.OK(c, "Printer unavailable; receipt returned for display", gin.H{
				"receipt":      receipt,
				"receipt_text": service.RenderReceiptText(receipt),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt":      receipt,
		"receipt_text": service.RenderReceiptText(receipt),
	})
}
