package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockpro/stockpro-api/internal/application/service"
	"github.com/stockpro/stockpro-api/internal/domain/enum"
	"github.com/stockpro/stockpro-api/internal/domain/repository"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/request"
	"github.com/stockpro/stockpro-api/internal/presentation/http/dto/response"
	"github.com/stockpro/stockpro-api/pkg/pagination"
)

// TransactionHandler handles transaction ledger HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	exportService      *service.ExportService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService, exportService *service.ExportService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		exportService:      exportService,
	}
}

// parseFilters converts the query string into ledger filter params
func parseFilters(c *gin.Context) (*repository.TransactionFilterParams, error) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		return nil, err
	}

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	switch filter.Type {
	case "in":
		t := enum.TransactionTypeStockIn
		params.Type = &t
	case "out":
		t := enum.TransactionTypeStockOut
		params.Type = &t
	}

	if filter.ItemID != "" {
		if id, err := uuid.Parse(filter.ItemID); err == nil {
			params.ItemID = &id
		}
	}
	if filter.CashierID != "" {
		if id, err := uuid.Parse(filter.CashierID); err == nil {
			params.CashierID = &id
		}
	}
	if filter.StartDate != "" {
		if t, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &t
		}
	}
	if filter.EndDate != "" {
		if t, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			// inclusive end of day
			end := t.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &end
		}
	}

	return params, nil
}

// List handles listing ledger entries with filters and pagination
func (h *TransactionHandler) List(c *gin.Context) {
	params, err := parseFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	txns, total, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(txns,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles retrieving one ledger entry
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}

// Summary aggregates the ledger over the given filters
func (h *TransactionHandler) Summary(c *gin.Context) {
	params, err := parseFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	summary, err := h.transactionService.GetSummary(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", gin.H{
		"total":           summary.Total,
		"stock_in_count":  summary.StockInCount,
		"stock_out_count": summary.StockOutCount,
		"stock_out_value": float64(summary.StockOutValue) / 100,
	})
}

// Export downloads the filtered ledger as CSV or XLSX
func (h *TransactionHandler) Export(c *gin.Context) {
	params, err := parseFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	format := c.DefaultQuery("format", "csv")
	filename := fmt.Sprintf("transactions-%s", time.Now().Format("2006-01-02"))

	switch format {
	case "csv":
		data, err := h.exportService.ExportCSV(c.Request.Context(), params)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(200, "text/csv", data)
	case "xlsx":
		data, err := h.exportService.ExportXLSX(c.Request.Context(), params)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		response.BadRequest(c, "Unsupported export format (use csv or xlsx)")
	}
}
