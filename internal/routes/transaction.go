package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	date, err := time.Parse(contracts.DateLayout, body.Date)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "must be a date in YYYY-MM-DD format"))
		return
	}

	tx := &transaction.Transaction{
		UserId:   userID,
		Title:    body.Title,
		Amount:   body.Amount,
		Category: body.Category,
		Type:     transaction.Types(body.Type),
		Date:     date,
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.CreateTransaction(ctx, tx); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transaction created",
		Transaction: tx,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := &transaction.Filters{
		Category: c.Query("category"),
	}

	if month := c.Query("month"); month != "" {
		if _, err := time.Parse(contracts.MonthLayout, month); err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "must be a month in YYYY-MM format"))
			return
		}
		filters.Month = month
	}

	if txType := c.Query("type"); txType != "" {
		if !transaction.Types(txType).IsValid() {
			h.respondError(c, appErrors.NewValidationError("type", "type must be income or expense"))
			return
		}
		filters.Type = transaction.Types(txType)
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	txs, total, err := h.TransactionService.ListTransactions(ctx, userID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(txs, pagination, total))
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: tx})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &transaction.UpdateRequest{
		Title:    body.Title,
		Amount:   body.Amount,
		Category: body.Category,
	}
	if body.Type != nil {
		txType := transaction.Types(*body.Type)
		req.Type = &txType
	}
	if body.Date != nil {
		date, err := time.Parse(contracts.DateLayout, *body.Date)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date", "must be a date in YYYY-MM-DD format"))
			return
		}
		req.Date = &date
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.UpdateTransaction(ctx, transactionID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionUpdateResponse{
		Message:     "Transaction updated",
		Transaction: tx,
	})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transaction deleted"})
}
