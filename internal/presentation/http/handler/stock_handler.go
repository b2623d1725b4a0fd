package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpro/stockpro-api/internal/application/service"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/request"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/response"
)

// StockHandler handles stock-in HTTP requests
type StockHandler struct {
	stockInService *service.StockInService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockInService *service.StockInService) *StockHandler {
	return &StockHandler{stockInService: stockInService}
}

// StockIn records incoming stock for an item
func (h *StockHandler) StockIn(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.stockInService.StockIn(c.Request.Context(), *cashier, req.ItemID, req.Quantity, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock recorded successfully", txn)
}
