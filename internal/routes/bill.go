package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

func (h *Handler) CreateBill(c *gin.Context) {
	var body contracts.BillCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dueDate, err := time.Parse(contracts.DateLayout, body.DueDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("due_date", "must be a date in YYYY-MM-DD format"))
		return
	}

	b := &bill.Bill{
		UserId:   userID,
		Name:     body.Name,
		Amount:   body.Amount,
		Category: body.Category,
		DueDate:  dueDate,
	}

	ctx := c.Request.Context()
	if err := h.BillService.CreateBill(ctx, b); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BillCreateResponse{
		Message: "Bill created",
		Bill:    b,
	})
}

func (h *Handler) ListBills(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	bills, err := h.BillService.ListBills(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillListResponse{
		Bills: bills,
		Total: len(bills),
	})
}

func (h *Handler) GetBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
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
	b, err := h.BillService.GetBillByID(ctx, billID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillSingleResponse{Bill: b})
}

func (h *Handler) UpdateBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.BillUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &bill.UpdateRequest{
		Name:     body.Name,
		Amount:   body.Amount,
		Category: body.Category,
	}
	if body.DueDate != nil {
		dueDate, err := time.Parse(contracts.DateLayout, *body.DueDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("due_date", "must be a date in YYYY-MM-DD format"))
			return
		}
		req.DueDate = &dueDate
	}

	ctx := c.Request.Context()
	b, err := h.BillService.UpdateBill(ctx, billID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillUpdateResponse{
		Message: "Bill updated",
		Bill:    b,
	})
}

func (h *Handler) DeleteBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.BillService.DeleteBill(ctx, billID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Bill deleted"})
}
